// Package model defines the domain types for the contacts API.
//
// It contains the two persisted entities (User and Contact), the identity
// payload carried by bearer tokens, and the error-response taxonomy used by
// the central error classifier.
package model
