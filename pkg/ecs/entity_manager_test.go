package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y int
}

type testLayerComponent struct {
	Layer int
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	// ID 从 1 开始，0 保留
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.Exists(InvalidEntity) {
		t.Error("InvalidEntity should never exist")
	}
	if em.Count() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	pos := comp.(*testPositionComponent)
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Expected (100, 200), got (%d, %d)", pos.X, pos.Y)
	}

	// 泛型版本读取同一个组件
	typed, ok := GetComponent[*testPositionComponent](em, id)
	if !ok || typed != pos {
		t.Error("Generic GetComponent should return the same pointer")
	}
}

func TestGenericAddComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testLayerComponent{Layer: 2})

	if !HasComponent[*testLayerComponent](em, id) {
		t.Fatal("Should have layer component after generic add")
	}
	if !em.HasComponent(id, reflect.TypeOf(&testLayerComponent{})) {
		t.Error("Reflection lookup should see component added generically")
	}

	RemoveComponent[*testLayerComponent](em, id)
	if HasComponent[*testLayerComponent](em, id) {
		t.Error("Component should be removed")
	}
}

func TestAddComponentToMissingEntity(t *testing.T) {
	em := NewEntityManager()

	// 不存在的实体：静默忽略
	em.AddComponent(42, &testTagComponent{})
	AddComponent(em, 42, &testTagComponent{})

	if em.Exists(42) {
		t.Error("Adding a component must not create an entity")
	}
	if _, ok := GetComponent[*testTagComponent](em, 42); ok {
		t.Error("Missing entity should have no components")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !HasComponent[*testPositionComponent](em, id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}

	// ID 不复用
	if next := em.CreateEntity(); next == id {
		t.Errorf("Entity ID %d should not be reused", id)
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: i})
		if i%2 == 0 {
			em.AddComponent(id, &testLayerComponent{Layer: i})
			ids = append(ids, id)
		}
	}

	got := GetEntitiesWith2[*testPositionComponent, *testLayerComponent](em)
	if len(got) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(got))
	}
	for i := range got {
		if got[i] != ids[i] {
			t.Errorf("Expected ascending order, index %d: expected %d, got %d", i, ids[i], got[i])
		}
	}

	if n := len(GetEntitiesWith1[*testPositionComponent](em)); n != 20 {
		t.Errorf("Expected 20 entities with position, got %d", n)
	}
	if n := len(GetEntitiesWith3[*testPositionComponent, *testLayerComponent, *testTagComponent](em)); n != 0 {
		t.Errorf("Expected no entities with tag, got %d", n)
	}
}
