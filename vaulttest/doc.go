/*
Package vaulttest provides mocks and helpers for testing programs and the
runtime.
*/
package vaulttest
