// Package convert moves entity data between entx and HashiCorp's value
// system. ToCty turns a serialized Record into a cty.Value, FromCty and
// DecodeHCL produce the untyped maps that entx.Fill and entx.Create accept.
package convert
