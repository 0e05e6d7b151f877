// Package userstore implements auth.UserStore on PostgreSQL, SQLite and
// process memory.
//
// Logins and emails are unique. Insert relies on the database constraint
// instead of a read-then-write, so two confirmations racing for the same
// account cannot both succeed; the loser gets auth.ErrUserAlreadyExists.
package userstore
