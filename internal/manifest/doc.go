// Package manifest reads the application manifest, the single source of
// truth for the minimum Go runtime the server supports.
//
// The manifest is a JSON document shaped like a package manifest:
//
//	{
//	  "name": "go-crm-front",
//	  "version": "5.0.0",
//	  "require": {"go": ">=1.22"}
//	}
//
// The lowest bound of the "go" constraint is the minimum runtime version.
package manifest
