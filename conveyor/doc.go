// Package conveyor simulates the inbound belt of a warehouse.
//
// Orders are placed on the belt (a FIFO queue) as they arrive. Processing
// the belt takes the oldest order, files it in the product index and routes
// a picker from the dock to the shelf assigned to the order's category over
// the floor graph:
//
//	AddOrder ──▶ [ belt ] ──▶ ProcessNext ──▶ index.Insert
//	                                   └────▶ routing.Route(dock, shelf)
//
// Processing an empty belt is not an error; it is logged and counted.
// Every step is logged with zerolog and counted with Prometheus collectors
// registered on the Registerer supplied through WithRegisterer.
package conveyor
