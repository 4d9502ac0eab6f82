// Package integration holds the ports to Packeta: the SOAP API used to
// create packets and print labels, the credentials it needs, and the
// faults it reports. Adapters live in infrastructure/packeta.
package integration
