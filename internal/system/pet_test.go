package system

import (
	"testing"

	"go-reef-survivors/internal/component"
	"go-reef-survivors/internal/entity"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/types"
	"go-reef-survivors/internal/utils"
	"go-reef-survivors/pkg/geom"

	"github.com/rs/zerolog"
)

type petFixture struct {
	ecs     *entity.ECS
	d       *event.Dispatcher
	damager *fakeDamager
	pets    *PetSystem
	rec     *recorder
}

func newPetFixture() *petFixture {
	f := &petFixture{ecs: entity.NewECS(), d: event.NewDispatcher(), damager: &fakeDamager{}}
	f.rec = listen(f.d, event.PetSummoned, event.PetAttacked)
	placePlayer(f.ecs, geom.Zero)
	f.pets = NewPetSystem(f.ecs, f.d, utils.NewPRNGService(3), f.damager, DefaultPetConfig(), zerolog.Nop())
	return f
}

func (f *petFixture) summon(t *testing.T, at geom.Vec2) (types.EntityID, *component.Pet) {
	t.Helper()
	id, ok := f.pets.SummonPet(at)
	if !ok {
		t.Fatal("SummonPet failed")
	}
	return id, f.ecs.Pets[id]
}

func TestPetRechargesThenSeeks(t *testing.T) {
	f := newPetFixture()
	_, pet := f.summon(t, geom.V(1, 0))
	if pet.State != component.PetRecharging || pet.RechargeTimer != 3 {
		t.Fatalf("summoned pet: %v timer %v", pet.State, pet.RechargeTimer)
	}

	f.pets.Update(0.02)
	if pet.State != component.PetRecharging || pet.Move == nil || pet.Move.Hopping {
		t.Fatalf("recharging pet should roam without hopping: %v %+v", pet.State, pet.Move)
	}

	f.pets.Update(3)
	if pet.State != component.PetSeekingTarget || pet.Move != nil {
		t.Fatalf("after recharge: %v move %+v", pet.State, pet.Move)
	}

	// врагов нет — короткая пауза и новая попытка
	f.pets.Update(0.02)
	if pet.State != component.PetRecharging || pet.RechargeTimer != 1 {
		t.Fatalf("no target: %v timer %v", pet.State, pet.RechargeTimer)
	}
}

func TestPetAttackRun(t *testing.T) {
	f := newPetFixture()
	petID, pet := f.summon(t, geom.V(1, 0))
	far := placeEnemy(f.ecs, geom.V(-12, 0), 50)
	near := placeEnemy(f.ecs, geom.V(6, 0), 50)
	placeEnemy(f.ecs, geom.V(40, 0), 50)

	pet.RechargeTimer = 0
	f.pets.Update(0.02) // Recharging -> SeekingTarget
	f.pets.Update(0.02) // SeekingTarget -> MovingToTarget
	if pet.State != component.PetMovingToTarget || pet.Target != near {
		t.Fatalf("state %v target %d, want MovingToTarget %d", pet.State, pet.Target, near)
	}
	f.pets.Update(0.02)
	if pet.Move == nil || !pet.Move.Hopping {
		t.Fatalf("attack move should hop: %+v", pet.Move)
	}

	f.d.Dispatch(event.Event{Type: event.TriggerEnter, Data: trigger(petID, types.TagPet, near, types.TagEnemy)})
	if len(f.damager.calls) != 1 || f.damager.calls[0].target != near || f.damager.calls[0].damage != 10 {
		t.Fatalf("hurt calls = %+v", f.damager.calls)
	}
	if pet.State != component.PetReturning || pet.Move != nil {
		t.Fatalf("after bite: %v move %+v", pet.State, pet.Move)
	}
	if f.rec.count(event.PetAttacked) != 1 {
		t.Fatalf("PetAttacked = %d", f.rec.count(event.PetAttacked))
	}

	// повторный контакт во время возврата игнорируется
	f.d.Dispatch(event.Event{Type: event.TriggerEnter, Data: trigger(petID, types.TagPet, far, types.TagEnemy)})
	if len(f.damager.calls) != 1 {
		t.Fatalf("returning pet attacked: %+v", f.damager.calls)
	}

	for i := 0; i < 2000 && pet.State == component.PetReturning; i++ {
		f.pets.Update(0.02)
	}
	if pet.State != component.PetRecharging || pet.RechargeTimer != 3 {
		t.Fatalf("after return: %v timer %v", pet.State, pet.RechargeTimer)
	}
	if d := geom.Dist(f.ecs.Positions[petID].Vec2, geom.Zero); d < 2.5 || d > 3.5 {
		t.Fatalf("pet returned to distance %v from player", d)
	}
	if pet.HopOffset != 0 {
		t.Fatalf("hop offset left at %v", pet.HopOffset)
	}
}

func TestPetHitsEachEnemyOncePerRun(t *testing.T) {
	f := newPetFixture()
	petID, pet := f.summon(t, geom.V(1, 0))
	enemy := placeEnemy(f.ecs, geom.V(3, 0), 50)

	pet.State = component.PetMovingToTarget
	pet.Target = enemy
	pet.HitThisRun[enemy] = true
	f.d.Dispatch(event.Event{Type: event.TriggerEnter, Data: trigger(petID, types.TagPet, enemy, types.TagEnemy)})
	if len(f.damager.calls) != 0 || pet.State != component.PetMovingToTarget {
		t.Fatalf("enemy hit twice in one run: %+v", f.damager.calls)
	}

	// новый поиск цели сбрасывает список
	pet.State = component.PetSeekingTarget
	f.pets.Update(0.02)
	if len(pet.HitThisRun) != 0 {
		t.Fatalf("hits not cleared: %v", pet.HitThisRun)
	}
}

func TestPetLosesTarget(t *testing.T) {
	f := newPetFixture()
	_, pet := f.summon(t, geom.V(1, 0))
	enemy := placeEnemy(f.ecs, geom.V(4, 0), 50)
	pet.State = component.PetMovingToTarget
	pet.Target = enemy
	f.pets.Update(0.02)
	if pet.Move == nil {
		t.Fatal("no move towards target")
	}

	f.ecs.Destroy(enemy)
	f.pets.Update(0.02)
	if pet.State != component.PetSeekingTarget || pet.Move != nil {
		t.Fatalf("lost target: %v move %+v", pet.State, pet.Move)
	}
}

func TestPetLimit(t *testing.T) {
	f := newPetFixture()
	for i := 0; i < 3; i++ {
		f.summon(t, geom.V(float64(i), 0))
	}
	if _, ok := f.pets.SummonPet(geom.Zero); ok {
		t.Fatal("summoned beyond the limit")
	}
	if f.rec.count(event.PetSummoned) != 3 {
		t.Fatalf("PetSummoned = %d", f.rec.count(event.PetSummoned))
	}
	last := f.rec.got[len(f.rec.got)-1].Data.(event.PetData)
	if last.Count != 3 || last.Max != 3 {
		t.Fatalf("last PetSummoned = %+v", last)
	}
}

func TestStatueInteraction(t *testing.T) {
	f := newPetFixture()
	statue := SpawnStatue(f.ecs, geom.V(1, 1))

	if f.pets.Interact() {
		t.Fatal("interacted while out of range")
	}
	f.d.Dispatch(event.Event{Type: event.TriggerEnter, Data: trigger(f.ecs.PlayerID, types.TagPlayer, statue, types.TagStatue)})
	if !f.pets.Interact() || len(f.ecs.Pets) != 1 || !f.ecs.PetStatues[statue].Used {
		t.Fatalf("interaction failed: pets %d", len(f.ecs.Pets))
	}
	if f.pets.Interact() {
		t.Fatal("used statue summoned again")
	}

	f.d.Dispatch(event.Event{Type: event.TriggerExit, Data: trigger(f.ecs.PlayerID, types.TagPlayer, statue, types.TagStatue)})
	if f.ecs.PetStatues[statue].PlayerInRange {
		t.Fatal("player still in range after exit")
	}
}

// runContact крутит настоящие триггеры вместе с питомцами, пока не будет укуса.
func runContact(f *petFixture, trig *TriggerSystem, ticks int) {
	for i := 0; i < ticks && len(f.damager.calls) == 0; i++ {
		trig.Update()
		f.pets.Update(0.02)
	}
}

func TestPetBitesOnColliderContact(t *testing.T) {
	tests := []struct {
		name  string
		enemy geom.Vec2
	}{
		{"approach", geom.V(6, 0)},
		{"already overlapping", geom.V(1.2, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPetFixture()
			trig := NewTriggerSystem(f.ecs, f.d)
			petID, pet := f.summon(t, geom.V(1, 0))
			enemy := placeEnemy(f.ecs, tt.enemy, 50)
			pet.RechargeTimer = 0.02

			runContact(f, trig, 500)

			if len(f.damager.calls) != 1 || f.damager.calls[0].target != enemy {
				t.Fatalf("hurt calls = %+v, state %v, pet at %v", f.damager.calls, pet.State, f.ecs.Positions[petID].Vec2)
			}
			if pet.State != component.PetReturning {
				t.Fatalf("after bite: %v, want Returning", pet.State)
			}

			// пока враг касается, повторных укусов в этом броске нет
			trig.Update()
			f.pets.Update(0.02)
			if len(f.damager.calls) != 1 {
				t.Fatalf("bitten again while returning: %+v", f.damager.calls)
			}
		})
	}
}

func TestStatueStaysInRangeWhileOverlapping(t *testing.T) {
	f := newPetFixture()
	trig := NewTriggerSystem(f.ecs, f.d)
	f.ecs.Colliders[f.ecs.PlayerID] = &component.Collider{Radius: 0.5, Tag: types.TagPlayer}
	statue := SpawnStatue(f.ecs, geom.V(1, 1))

	for i := 0; i < 3; i++ {
		trig.Update()
	}
	if !f.ecs.PetStatues[statue].PlayerInRange {
		t.Fatal("stay events dropped the player out of range")
	}

	f.ecs.Positions[f.ecs.PlayerID].Vec2 = geom.V(10, 10)
	trig.Update()
	if f.ecs.PetStatues[statue].PlayerInRange {
		t.Fatal("player still in range after leaving")
	}
}
