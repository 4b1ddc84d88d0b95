// Package extract turns an image with an alpha channel into an ordered list
// of cut-out objects.
//
// Run is the whole pipeline: it builds a binary mask from the alpha channel,
// detects and orders regions (package detection), crops every region large
// enough to keep (package imaging) and returns a fresh Result. Run is a pure
// function of its inputs; two runs never share intermediate state, so the
// same source image can be processed concurrently with different Params.
//
// Session adds the bookkeeping of an interactive host: one active image,
// the latest result, and submission ordering so that a slow run never
// overwrites the result of a newer one.
package extract
