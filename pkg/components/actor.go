package components

// ActorKind 世界中对象的种类
//
// 世界按种类分派行为：静态物体只参与碰撞与绘制，
// 动物和敌人每 tick 执行漫游行为，玩家角色由输入驱动。
type ActorKind int

const (
	ActorStatic ActorKind = iota
	ActorAnimal
	ActorEnemy
	ActorCharacter
)

func (k ActorKind) String() string {
	switch k {
	case ActorStatic:
		return "static"
	case ActorAnimal:
		return "animal"
	case ActorEnemy:
		return "enemy"
	case ActorCharacter:
		return "character"
	}
	return "unknown"
}

// ActorComponent 标记实体为世界中的对象
type ActorComponent struct {
	Kind ActorKind
}
