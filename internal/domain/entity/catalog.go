package entity

import "time"

// Category agrupa productos.
type Category struct {
	ID          int64
	Name        string
	Description string
}

// Location es un almacén o punto de venta donde se mantiene stock.
type Location struct {
	ID      int64
	Name    string
	Address string
}

// Supplier es la contraparte de una compra.
type Supplier struct {
	ID        int64
	Name      string
	TaxID     string
	Phone     string
	Email     string
	CreatedAt time.Time
}

// Customer es la contraparte de una venta.
type Customer struct {
	ID        int64
	Name      string
	TaxID     string
	Phone     string
	Email     string
	CreatedAt time.Time
}
