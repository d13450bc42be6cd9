// Package cryptography provides password hashing with bcrypt and HS256
// bearer token signing and parsing with golang-jwt.
package cryptography
