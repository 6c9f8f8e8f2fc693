// Package repository defines the persistence contracts of the auth core:
// entity structs, repository interfaces, and the sentinel errors adapters
// must translate driver errors into. Concrete implementations live under
// internal/store.
package repository
