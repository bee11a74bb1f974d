package entities

type Product struct {
	Type  string
	Label string
	Unit  string
}

// Каталог фиксированный, порядок важен для выпадающего списка.
var catalog = []Product{
	{Type: "harina_000", Label: "Harina 000", Unit: "kg"},
	{Type: "harina_0000", Label: "Harina 0000", Unit: "kg"},
	{Type: "harina_integral", Label: "Harina Integral", Unit: "kg"},
	{Type: "semolin", Label: "Semolín", Unit: "kg"},
	{Type: "salvado", Label: "Salvado", Unit: "kg"},
}

func Catalog() []Product {
	out := make([]Product, len(catalog))
	copy(out, catalog)
	return out
}

func LookupProduct(productType string) (Product, bool) {
	for _, p := range catalog {
		if p.Type == productType {
			return p, true
		}
	}
	return Product{}, false
}

// ProductLabel возвращает подпись товара, для неизвестного кода - сам код.
func ProductLabel(productType string) string {
	if p, ok := LookupProduct(productType); ok {
		return p.Label
	}
	return productType
}
