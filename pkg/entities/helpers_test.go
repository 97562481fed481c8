package entities

import (
	"testing"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/ecs"
)

// mustPosition 读取实体位置，不存在时终止测试
func mustPosition(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no PositionComponent", id)
	}
	return pos
}
