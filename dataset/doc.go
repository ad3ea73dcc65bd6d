// Package dataset defines the record types the demos run over, the
// built-in sample data, and loaders for record files.
//
// Record files are YAML or JSON lists:
//
//	- name: Laptop Pro
//	  category: Electronics
//	  price: 1500
//
// Loaded records are validated; every invalid record is reported with its
// index before any demo sees the data.
package dataset
