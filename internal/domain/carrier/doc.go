// Package carrier contains the carrier catalog synced from the Packeta feed
// and the internal Packeta pickup point carriers.
package carrier
