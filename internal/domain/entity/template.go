package entity

// Template entrada del catálogo de alta rápida: un clic crea un lote de amount=1
// fechado hoy con estos valores. Los templates personalizados se registran al
// hacer un alta manual y conviven con los integrados (el nombre desempata:
// el personalizado pisa al integrado).
type Template struct {
	Name      string
	Unit      string
	ShelfLife int
	Storage   Storage
	Custom    bool // true si lo creó el usuario (puede quitarse del catálogo)
}

// BuiltinTemplates catálogo integrado de la app.
func BuiltinTemplates() []Template {
	return []Template{
		{Name: "Egg", Unit: "piece", ShelfLife: 21, Storage: StorageFridge},
		{Name: "Milk", Unit: "box", ShelfLife: 7, Storage: StorageFridge},
		{Name: "Onion", Unit: "piece", ShelfLife: 14, Storage: StoragePantry},
		{Name: "Potato", Unit: "piece", ShelfLife: 30, Storage: StoragePantry},
		{Name: "Tomato", Unit: "piece", ShelfLife: 7, Storage: StorageFridge},
		{Name: "Chicken breast", Unit: "piece", ShelfLife: 3, Storage: StorageFridge},
	}
}
