// Package settings contains the plugin options: Packeta API credentials,
// sender, label formats and shipping method pricing.
package settings
