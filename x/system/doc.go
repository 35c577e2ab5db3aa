/*
Package system implements the system program. It owns every account that
was never assigned to another program and is the only way to create an
account, fund it and hand it over to a program.
*/
package system
