// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
// - carrier.go: packetery_carrier, the synced carrier catalog
// - shipment.go: packetery_order_shipments, Packeta meta of WooCommerce orders
// - option.go: packetery_options, key/value settings store
// - log.go: packetery_log, the append-only API call log
package models
