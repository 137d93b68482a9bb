// Package command implements the text console of the drum.
//
// Commands are lines terminated by CR or LF:
//
//	trommelbold?    replies "yessir!"
//	id?             replies the device ID
//	h<n>...         hits channel n, several may follow each other: h1h3
//	r<n>...         releases channel n
//	<N>             hits channel N-1
//	seq <name>      starts a pattern, replies "ok"
//	stop            stops the pattern, replies "ok"
//
// Anything else is answered with "err".
package command
