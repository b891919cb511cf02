// Package catalog stores named message templates and renders them against
// caller data. Catalogs load from JSON/YAML files on any fs.FS, with nested
// mappings flattened into dotted keys, or fill programmatically via Register.
// Lookup failures are the only errors a catalog surfaces; rendering itself
// follows the engine's total contract.
package catalog
