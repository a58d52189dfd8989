// Package scaffold overlays the embedded template tree onto a freshly
// generated project: the vueforge.yaml manifest, example auth store and
// composable, validation rules, the Vuetify plugin, and editor config.
// Files the generator already created are never overwritten.
package scaffold
