// Package library catalogues the books of each account.
//
// Service validates and normalises book forms and hands them to a Store.
// Every book carries an author code, the upper-cased first eight letters of
// the author's last name, used to shelve books alphabetically. Authors are
// written "Last, First" or "First Last".
package library
