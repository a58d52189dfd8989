// Package manifest defines the vueforge.yaml project manifest written into
// every scaffolded project: typed parsing via YAML and structural validation
// against an embedded JSON Schema. The manifest records how the project was
// generated and lets projects extend the naming conventions enforced by
// "vueforge check".
package manifest
