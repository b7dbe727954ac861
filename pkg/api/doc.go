// Package api defines the JSON wire messages of the naijatax.v1 services.
//
// Field names follow the snake_case JSON convention of Connect's JSON
// encoding. Monetary values are plain numbers in naira.
package api
