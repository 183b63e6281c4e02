// Package mapping owns every memory-mapped region this module ever hands
// out: read-only file maps, named shared-memory regions, and scoped
// writable regions over an already-open file.
//
// Every mapping returned by MapFile or MapSharedMemory is, at the same
// time, registered in a process-wide Registry keyed by that pointer's
// address — the only place the native handles needed to release it are
// kept. This mirrors the original implementation's single
// HashMap<ptr, handles> design closely: getting the unmap path wrong for
// any platform is the easiest way to leak or crash, so there is exactly one
// way to release such a mapping, UnmapFile, whichever of the two it came
// from. A Region is not registered: it holds its own native handles and
// releases them through its Unmap method.
package mapping
