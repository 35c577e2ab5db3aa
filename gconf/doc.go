/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Every package keeps at most one configuration object, stored under the
"_c:<package>" key. The object is loaded from the genesis file
(opts["conf"][package]) with InitConfig and read back with Load.

Not being able to get a configuration value is a critical condition for the
runtime and there is no recovery path for the client.
*/
package gconf
