package cdn

import (
	"context"

	"github.com/grindlemire/graft"
)

// MemoNodeID is the unique identifier for the response memo Graft node.
const MemoNodeID graft.ID = "adapter.cdn.memo"

func init() {
	graft.Register(graft.Node[*Memo]{
		ID:        MemoNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Memo, error) {
			return NewMemo(), nil
		},
	})
}
