// Package api
// Author: momentics <momentics@gmail.com>
//
// Core abstractions for the lazyres library: accessor contracts for
// construct-once resources, builder recipes, state reporting, structured
// errors, and control/debug surfaces.
//
// All other packages depend only on these contracts; implementations live in
// resource/, registry/, control/, and facade/.
package api
