// Package binder fills request structs from form fields, JSON bodies and
// route parameters. Each binder only reads fields carrying its own struct tag
// (form, json, path), so several binders can be chained on one struct.
package binder
