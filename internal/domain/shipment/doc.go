// Package shipment holds the Packeta meta attached to a WooCommerce order:
// chosen carrier and pickup point, created packet, label state and tracking.
package shipment
