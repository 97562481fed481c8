package systems

import (
	"math"

	"github.com/decker502/lawndefense/pkg/components"
	"github.com/decker502/lawndefense/pkg/config"
	"github.com/decker502/lawndefense/pkg/ecs"
	"github.com/decker502/lawndefense/pkg/entities"
	"github.com/decker502/lawndefense/pkg/game"
	"github.com/decker502/lawndefense/pkg/types"
)

// 植物战斗常量
const (
	// PlantContactDamage 每个重叠僵尸每帧对植物造成的伤害
	PlantContactDamage = 0.2
	// projectileOffsetY 子弹相对植物顶部的发射高度
	projectileOffsetY = 20.0
	// repeaterSpacing 双发射手第二颗豌豆落后的距离
	repeaterSpacing = 30.0
)

// PlantContext 植物行为执行时可访问的共享状态
type PlantContext struct {
	EM     *ecs.EntityManager
	State  *game.GameState
	Stats  *config.PlantStatsConfig
	Audio  game.AudioPlayer
	Plant  *components.PlantComponent
	Pos    *components.PositionComponent
	Health *components.HealthComponent
}

// PlantBehavior 植物变体的行为
type PlantBehavior interface {
	// Attack 每帧调用，根据冷却和目标决定是否攻击
	Attack(ctx *PlantContext, id ecs.EntityID)
	// ApplyUpgrade 按新等级重新计算属性
	ApplyUpgrade(plant *components.PlantComponent, health *components.HealthComponent, base config.PlantStats)
	// HandleCollision 处理与僵尸的接触
	HandleCollision(ctx *PlantContext, id ecs.EntityID)
}

// plantBehaviors 植物类型到行为的注册表
var plantBehaviors = map[types.PlantType]PlantBehavior{
	types.PlantSunflower:       sunflowerBehavior{},
	types.PlantPeaShooter:      shooterBehavior{shots: 1},
	types.PlantRepeater:        shooterBehavior{shots: 2},
	types.PlantThreePeaShooter: threePeaBehavior{},
	types.PlantChomper:         chomperBehavior{},
	types.PlantWallNut:         wallNutBehavior{},
	types.PlantPotatoMines:     potatoMineBehavior{},
	types.PlantSpikeweed:       spikeweedBehavior{},
	types.PlantMelonPult:       melonPultBehavior{},
}

// BehaviorFor 返回植物类型的行为，未注册时返回默认行为
func BehaviorFor(pt types.PlantType) PlantBehavior {
	if b, ok := plantBehaviors[pt]; ok {
		return b
	}
	return basePlant{}
}

// basePlant 默认行为：不攻击，被僵尸啃食
type basePlant struct{}

func (basePlant) Attack(ctx *PlantContext, id ecs.EntityID) {}

// ApplyUpgrade 默认升级：生命值提升 20%
func (basePlant) ApplyUpgrade(plant *components.PlantComponent, health *components.HealthComponent, base config.PlantStats) {
	health.MaxHealth *= 1.2
	health.CurrentHealth *= 1.2
}

// HandleCollision 每个重叠的存活僵尸使植物掉血并停下啃食
func (basePlant) HandleCollision(ctx *PlantContext, id ecs.EntityID) {
	for _, z := range overlappingZombies(ctx.EM, ctx.Pos, false) {
		ctx.Health.CurrentHealth -= PlantContactDamage
		z.Zombie.Increment = 0
		z.Zombie.Attacking = true
	}
}

// scaleInterval 间隔按等级指数缩短
func scaleInterval(base int, factor float64, level int) int {
	return int(math.Floor(float64(base) * math.Pow(factor, float64(level-1))))
}

// latchAttack 射击节拍到达时锁存 AttackNow
func latchAttack(ctx *PlantContext) {
	if ctx.State.Tick(ctx.Plant.AttackInterval) {
		ctx.Plant.AttackNow = true
	}
}

// shooterBehavior 豌豆射手和双发射手
type shooterBehavior struct {
	basePlant
	shots int
}

func (b shooterBehavior) Attack(ctx *PlantContext, id ecs.EntityID) {
	p := ctx.Plant
	p.Attacking = zombieAheadInRow(ctx.EM, p.GridRow, ctx.Pos.X)
	latchAttack(ctx)
	if !p.Attacking || !p.AttackNow {
		return
	}

	x := ctx.Pos.Right() - entities.ProjectileSize
	y := ctx.Pos.Y + projectileOffsetY
	for i := 0; i < b.shots; i++ {
		entities.NewProjectileEntity(ctx.EM, components.ProjectileStraight, x-float64(i)*repeaterSpacing, y, p.Damage, p.GridRow)
	}
	p.AttackNow = false
	ctx.Audio.Play(game.SoundShoot)
}

func (b shooterBehavior) ApplyUpgrade(plant *components.PlantComponent, health *components.HealthComponent, base config.PlantStats) {
	b.basePlant.ApplyUpgrade(plant, health, base)
	plant.Damage = base.Damage + 5*float64(plant.Level-1)
	plant.AttackInterval = scaleInterval(base.Interval, 0.9, plant.Level)
}

// threePeaBehavior 三线射手：向本行和上下相邻行各发射一颗豌豆
type threePeaBehavior struct {
	shooterBehavior
}

func (threePeaBehavior) Attack(ctx *PlantContext, id ecs.EntityID) {
	p := ctx.Plant
	p.Attacking = false
	for _, row := range []int{p.GridRow - 1, p.GridRow, p.GridRow + 1} {
		if row >= 0 && row < config.GridRows && zombieAheadInRow(ctx.EM, row, ctx.Pos.X) {
			p.Attacking = true
			break
		}
	}
	latchAttack(ctx)
	if !p.Attacking || !p.AttackNow {
		return
	}

	x := ctx.Pos.Right() - entities.ProjectileSize
	y := ctx.Pos.Y + projectileOffsetY
	entities.NewProjectileEntity(ctx.EM, components.ProjectileStraight, x, y, p.Damage, p.GridRow)
	if p.GridRow > 0 {
		entities.NewProjectileEntity(ctx.EM, components.ProjectileTop, x, y, p.Damage, p.GridRow)
	}
	if p.GridRow < config.GridRows-1 {
		entities.NewProjectileEntity(ctx.EM, components.ProjectileBottom, x, y, p.Damage, p.GridRow)
	}
	p.AttackNow = false
	ctx.Audio.Play(game.SoundShoot)
}

// melonPultBehavior 西瓜投手：有目标时累积自己的冷却计数，按间隔投掷
type melonPultBehavior struct {
	basePlant
}

func (melonPultBehavior) Attack(ctx *PlantContext, id ecs.EntityID) {
	p := ctx.Plant
	p.Attacking = zombieAheadInRow(ctx.EM, p.GridRow, ctx.Pos.X)
	if !p.Attacking {
		// 目标丢失后重新计时，再次发现目标要等满一个间隔
		p.Counter = 0
		return
	}

	p.Counter += ctx.State.GameSpeed
	if !game.Every(p.Counter, p.AttackInterval, ctx.State.GameSpeed) {
		return
	}
	entities.NewProjectileEntity(ctx.EM, components.ProjectileParabolic,
		ctx.Pos.X+ctx.Pos.Width/2, ctx.Pos.Y+projectileOffsetY, p.Damage, p.GridRow)
	ctx.Audio.Play(game.SoundShoot)
}

func (b melonPultBehavior) ApplyUpgrade(plant *components.PlantComponent, health *components.HealthComponent, base config.PlantStats) {
	b.basePlant.ApplyUpgrade(plant, health, base)
	plant.Damage = base.Damage + 10*float64(plant.Level-1)
	plant.AttackInterval = scaleInterval(base.Interval, 0.9, plant.Level)
}

// sunflowerBehavior 向日葵：按自己的计数器周期性产出阳光
type sunflowerBehavior struct {
	basePlant
}

func (sunflowerBehavior) Attack(ctx *PlantContext, id ecs.EntityID) {
	p := ctx.Plant
	p.Counter += ctx.State.GameSpeed
	if !game.Every(p.Counter, p.SunInterval, ctx.State.GameSpeed) {
		return
	}
	targetY := ctx.Pos.Bottom() - entities.SunSize
	entities.NewSunEntity(ctx.EM, ctx.Pos.X+(ctx.Pos.Width-entities.SunSize)/2, ctx.Pos.Y, targetY, p.SunValue)
}

func (b sunflowerBehavior) ApplyUpgrade(plant *components.PlantComponent, health *components.HealthComponent, base config.PlantStats) {
	b.basePlant.ApplyUpgrade(plant, health, base)
	plant.SunValue = base.SunValue + 5*(plant.Level-1)
	plant.SunInterval = scaleInterval(base.Interval, 0.85, plant.Level)
}

// chomperBehavior 大嘴花：吞掉前方一定距离内的僵尸，随后咀嚼冷却
type chomperBehavior struct {
	basePlant
}

func (chomperBehavior) Attack(ctx *PlantContext, id ecs.EntityID) {
	p := ctx.Plant
	if p.Chewing {
		p.Counter += ctx.State.GameSpeed
		if p.Counter >= p.AttackInterval {
			p.Chewing = false
			p.Counter = 0
		}
		p.Attacking = false
		return
	}

	target, ok := chomperTarget(ctx)
	p.Attacking = ok
	if !ok {
		return
	}

	// 走正常的死亡流程计分，被吞掉的僵尸不播放死亡动画
	target.Health.CurrentHealth = 0
	target.Zombie.Eaten = true
	p.Chewing = true
	p.Counter = 0
	ctx.Audio.Play(game.SoundChomp)
}

// chomperTarget 找到第一个可吞食的僵尸
// 条件：同一行，且 zombie.X-(plant.X+plant.W) 落在 [-CellWidth, CellWidth-range] 内
func chomperTarget(ctx *PlantContext) (zombieRef, bool) {
	for _, z := range liveZombies(ctx.EM) {
		if z.Zombie.Row != ctx.Plant.GridRow {
			continue
		}
		dx := z.Pos.X - ctx.Pos.Right()
		if dx >= -config.CellWidth && dx <= config.CellWidth-ctx.Plant.AttackRange {
			return z, true
		}
	}
	return zombieRef{}, false
}

func (b chomperBehavior) ApplyUpgrade(plant *components.PlantComponent, health *components.HealthComponent, base config.PlantStats) {
	b.basePlant.ApplyUpgrade(plant, health, base)
	plant.AttackInterval = scaleInterval(base.Interval, 0.85, plant.Level)
	plant.AttackRange = base.Range + 20*float64(plant.Level-1)
}

// wallNutBehavior 坚果墙：只抗伤，升级提升生命值上限
type wallNutBehavior struct {
	basePlant
}

// ApplyUpgrade 每级生命值上限和当前生命值各加 250
func (wallNutBehavior) ApplyUpgrade(plant *components.PlantComponent, health *components.HealthComponent, base config.PlantStats) {
	health.MaxHealth += 250
	health.CurrentHealth += 250
}

// potatoMineBehavior 土豆地雷：准备完成后被地面僵尸踩到即爆炸
type potatoMineBehavior struct {
	basePlant
}

func (potatoMineBehavior) Attack(ctx *PlantContext, id ecs.EntityID) {
	p := ctx.Plant
	if !p.Armed {
		p.Counter += ctx.State.GameSpeed
		if p.Counter >= p.ArmDelay {
			p.Armed = true
		}
		return
	}

	victims := overlappingZombies(ctx.EM, ctx.Pos, true)
	if len(victims) == 0 {
		return
	}
	for _, z := range victims {
		z.Health.CurrentHealth -= p.Damage
	}
	p.Attacking = true
	// 爆炸后地雷消失，走植物死亡流程
	ctx.Health.CurrentHealth = 0
	ctx.Audio.Play(game.SoundExplode)
}

// spikeweedBehavior 地刺：持续伤害经过的地面僵尸，不会被啃食也不阻挡僵尸
type spikeweedBehavior struct {
	basePlant
}

func (spikeweedBehavior) HandleCollision(ctx *PlantContext, id ecs.EntityID) {
	victims := overlappingZombies(ctx.EM, ctx.Pos, true)
	ctx.Plant.Attacking = len(victims) > 0
	for _, z := range victims {
		z.Health.CurrentHealth -= ctx.Plant.DamagePerTick * float64(ctx.State.GameSpeed)
	}
}

func (b spikeweedBehavior) ApplyUpgrade(plant *components.PlantComponent, health *components.HealthComponent, base config.PlantStats) {
	b.basePlant.ApplyUpgrade(plant, health, base)
	plant.DamagePerTick = base.DamagePerTick * (1 + 0.5*float64(plant.Level-1))
}
