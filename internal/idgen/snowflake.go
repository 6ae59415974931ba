package idgen

import (
	"fmt"
	"time"

	sf "github.com/bwmarrin/snowflake"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// DefaultEpoch 雪花算法起始时间
const DefaultEpoch = "2024-01-01"

type snowflakeGenerator struct {
	node *sf.Node
}

var _ domain.IDGenerator = (*snowflakeGenerator)(nil)

// NewSnowflake 创建雪花节点
// startTime: 起始时间，格式："2006-01-02"
// nodeID: 机器ID (0-1023)
func NewSnowflake(startTime string, nodeID int64) (*snowflakeGenerator, error) {
	st, err := time.Parse("2006-01-02", startTime)
	if err != nil {
		return nil, fmt.Errorf("parse snowflake epoch: %w", err)
	}
	sf.Epoch = st.UnixNano() / int64(time.Millisecond)

	node, err := sf.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("create snowflake node %d: %w", nodeID, err)
	}
	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) NextID() int64 {
	return g.node.Generate().Int64()
}
