package models

// RuntimeStatus describes how the running Go version compares to the
// minimum declared in the application manifest.
type RuntimeStatus struct {
	// Constraint is the raw requirement string from the manifest.
	Constraint string `json:"constraint"`

	// Required is the lowest version satisfying Constraint.
	Required string `json:"required"`

	// Running is the version of the current runtime.
	Running string `json:"running"`

	// Satisfied is true when Running is not below Required.
	Satisfied bool `json:"satisfied"`
}
