/*
	Package ndimg provides types, constants, and functions that have no other dependencies
	and can be used by all packages within ndimg.  This includes intervals and positions
	in n-dimensional space, the primitive data types used for pixel storage, the traversal
	interfaces (cursors and random accesses) implemented by image containers, logging,
	configuration, and serialization of storage blocks.
*/
package ndimg
