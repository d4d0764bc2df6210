package tile

import (
	"encoding/gob"
	"io"

	"github.com/flightgear-scenery/tgcore/primitives"
	"github.com/flightgear-scenery/tgcore/tgerr"
)

// SharedEdgeRecord is the small per-tile-side artifact written at the
// end of a stage and read by the same side's neighbor at the start of
// the next stage. It carries only what that neighbor needs — never a
// whole polygon — mirroring the original's "just x,y coords of points
// on the boundary" (stage 1) record and, for stage 2, each boundary
// node's 3D position plus the area and normal of its incident faces.
//
// Records are encoded with the standard library's encoding/gob
// (recorded in DESIGN.md).
type SharedEdgeRecord struct {
	Bucket Bucket
	Side   Side
	Stage  int

	// Points carries every polygon-boundary vertex on this side,
	// written at the end of stage 1 and consumed by the neighbor's
	// T-junction repair (stage 2, step 8).
	Points []primitives.Point2

	// Nodes carries, for each boundary node (stage-2 record only),
	// its 3D position and the area and normal of each face incident to
	// it, so the
	// neighbor can fold them into its own elevation averaging (stage
	// 3, step 17) and smooth-normal computation (step 19).
	Nodes []SharedNode
}

// SharedNode is one boundary node's contribution to a stage-2 shared
// edge record.
type SharedNode struct {
	Pos        primitives.Point3
	FaceAreas  []float64
	FaceNormal [][3]float64
}

// WriteSharedEdgeRecord gob-encodes rec to w.
func WriteSharedEdgeRecord(w io.Writer, rec SharedEdgeRecord) error {
	if err := gob.NewEncoder(w).Encode(rec); err != nil {
		return tgerr.Wrap(tgerr.KindMissingResource, "tile.WriteSharedEdgeRecord", err)
	}
	return nil
}

// ReadSharedEdgeRecord decodes a SharedEdgeRecord from r. Per the
// error-handling policy, a missing neighbor record is not this
// function's concern — callers treat a nil reader (no record
// available) as an ocean neighbor before ever calling this.
func ReadSharedEdgeRecord(r io.Reader) (SharedEdgeRecord, error) {
	var rec SharedEdgeRecord
	if err := gob.NewDecoder(r).Decode(&rec); err != nil {
		return SharedEdgeRecord{}, tgerr.Wrap(tgerr.KindMissingResource, "tile.ReadSharedEdgeRecord", err)
	}
	return rec, nil
}
