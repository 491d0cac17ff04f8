// Package emit renders a resolved build configuration in the formats the
// native build tool can consume.
package emit
