// internal/system/draft.go
package system

import (
	"errors"
	"fmt"

	"go-reef-survivors/internal/defs"
	"go-reef-survivors/internal/event"
	"go-reef-survivors/internal/inventory"
	"go-reef-survivors/internal/utils"

	"github.com/rs/zerolog"
)

var (
	ErrDraftClosed   = errors.New("no draft is open")
	ErrDraftIndex    = errors.New("draft entry index out of range")
	ErrDraftDisabled = errors.New("draft entry is disabled")
	ErrDraftApply    = errors.New("draft selection could not be applied")
)

// UpgradeOption — линейка предметов в пуле драфта. CurrentID двигается по уровням
// по мере прокачки, чтобы узнавать предмет в инвентаре.
type UpgradeOption struct {
	Kind      inventory.Kind
	BaseID    string
	CurrentID string
}

// DraftEntry — одна карточка на экране повышения уровня.
type DraftEntry struct {
	Kind        inventory.Kind
	Option      int    // индекс в пуле
	DefID       string // что будет выдано
	Name        string
	Description string
	Level       int
	Upgrade     bool // true — заменить предмет в ячейке Slot следующим уровнем
	Slot        int
	Active      bool
}

// Draft — открытый выбор улучшений.
type Draft struct {
	Entries []DraftEntry
}

// ActiveCount возвращает число доступных карточек.
func (d *Draft) ActiveCount() int {
	n := 0
	for _, e := range d.Entries {
		if e.Active {
			n++
		}
	}
	return n
}

// DraftSystem собирает варианты улучшений при повышении уровня и применяет выбор.
type DraftSystem struct {
	eventDispatcher *event.Dispatcher
	lib             *defs.Library
	rng             *utils.PRNGService
	inv             *inventory.Inventory
	equipper        Equipper
	log             zerolog.Logger
	slots           int

	options [2][]UpgradeOption
	current *Draft
	pending int
}

func NewDraftSystem(eventDispatcher *event.Dispatcher, lib *defs.Library, rng *utils.PRNGService, inv *inventory.Inventory, equipper Equipper, slots int, log zerolog.Logger) *DraftSystem {
	s := &DraftSystem{
		eventDispatcher: eventDispatcher,
		lib:             lib,
		rng:             rng,
		inv:             inv,
		equipper:        equipper,
		slots:           slots,
		log:             log.With().Str("system", "draft").Logger(),
	}
	for _, id := range lib.WeaponPool {
		s.options[inventory.Weapon] = append(s.options[inventory.Weapon], UpgradeOption{Kind: inventory.Weapon, BaseID: id, CurrentID: id})
	}
	for _, id := range lib.PassivePool {
		s.options[inventory.Passive] = append(s.options[inventory.Passive], UpgradeOption{Kind: inventory.Passive, BaseID: id, CurrentID: id})
	}
	eventDispatcher.Subscribe(event.LevelUp, s)
	return s
}

// SyncOwned отмечает предметы, уже лежащие в инвентаре (стартовое оружие),
// чтобы пул узнавал их по текущему уровню.
func (s *DraftSystem) SyncOwned() {
	for kind := range s.options {
		for i := range s.options[kind] {
			opt := &s.options[kind][i]
			if _, owned := s.inv.Find(opt.Kind, opt.CurrentID); owned {
				continue
			}
			for _, slot := range s.inv.Slots(opt.Kind) {
				if slot.Filled && s.sameLine(opt.Kind, opt.BaseID, slot.DefID) {
					opt.CurrentID = slot.DefID
				}
			}
		}
	}
}

// sameLine — принадлежит ли defID цепочке уровней, начинающейся с base.
func (s *DraftSystem) sameLine(kind inventory.Kind, base, defID string) bool {
	for id, steps := base, 0; id != "" && steps < 64; steps++ {
		if id == defID {
			return true
		}
		id = s.nextLevel(kind, id)
	}
	return false
}

func (s *DraftSystem) nextLevel(kind inventory.Kind, id string) string {
	if kind == inventory.Weapon {
		return s.lib.Weapons[id].NextLevelID
	}
	return s.lib.Passives[id].NextLevelID
}

// Current возвращает открытый драфт или nil.
func (s *DraftSystem) Current() *Draft {
	return s.current
}

// Pending — сколько повышений уровня ждут своей очереди.
func (s *DraftSystem) Pending() int {
	return s.pending
}

func (s *DraftSystem) OnEvent(e event.Event) {
	if e.Type == event.LevelUp {
		s.Open()
	}
}

// Open собирает новый драфт. Если драфт уже открыт, повышение ставится в очередь.
func (s *DraftSystem) Open() {
	if s.current != nil {
		s.pending++
		return
	}
	draft := s.build()
	if draft.ActiveCount() == 0 {
		s.log.Info().Int("pending", s.pending).Msg("nothing to offer, skipping draft")
		s.pending = 0
		return
	}
	s.current = draft
	s.eventDispatcher.Dispatch(event.Event{Type: event.DraftOpened, Data: draft})
}

func (s *DraftSystem) build() *Draft {
	pools := [2][]int{}
	for kind := range s.options {
		for i := range s.options[kind] {
			pools[kind] = append(pools[kind], i)
		}
	}

	draft := &Draft{Entries: make([]DraftEntry, 0, s.slots)}
	for slot := 0; slot < s.slots; slot++ {
		var kind inventory.Kind
		switch {
		case len(pools[inventory.Weapon]) == 0 && len(pools[inventory.Passive]) == 0:
			draft.Entries = append(draft.Entries, DraftEntry{Active: false})
			continue
		case len(pools[inventory.Weapon]) == 0:
			kind = inventory.Passive
		case len(pools[inventory.Passive]) == 0:
			kind = inventory.Weapon
		default:
			kind = inventory.Kind(s.rng.Intn(2))
		}

		pick := s.rng.Intn(len(pools[kind]))
		optIndex := pools[kind][pick]
		pools[kind] = append(pools[kind][:pick:pick], pools[kind][pick+1:]...)

		draft.Entries = append(draft.Entries, s.describe(kind, optIndex))
	}
	return draft
}

func (s *DraftSystem) describe(kind inventory.Kind, optIndex int) DraftEntry {
	opt := s.options[kind][optIndex]
	entry := DraftEntry{Kind: kind, Option: optIndex, Slot: -1}

	if slot, owned := s.inv.Find(kind, opt.CurrentID); owned {
		next := s.nextLevel(kind, opt.CurrentID)
		entry.Upgrade = true
		entry.Slot = slot
		entry.DefID = next
		entry.Active = next != ""
		s.fillText(&entry, kind, opt.CurrentID, next)
		return entry
	}

	entry.DefID = opt.BaseID
	entry.Active = !s.inv.Full(kind)
	s.fillText(&entry, kind, opt.BaseID, opt.BaseID)
	return entry
}

func (s *DraftSystem) fillText(entry *DraftEntry, kind inventory.Kind, currentID, shownID string) {
	if shownID == "" {
		shownID = currentID
	}
	if kind == inventory.Weapon {
		def := s.lib.Weapons[shownID]
		entry.Name, entry.Description, entry.Level = def.Name, def.Description, def.Level
		return
	}
	def := s.lib.Passives[shownID]
	entry.Name, entry.Description, entry.Level = def.Name, def.Description, def.Level
}

// Select применяет выбранную карточку и закрывает драфт.
func (s *DraftSystem) Select(index int) error {
	if s.current == nil {
		return ErrDraftClosed
	}
	if index < 0 || index >= len(s.current.Entries) {
		s.log.Warn().Int("index", index).Msg("draft index out of range")
		return fmt.Errorf("%w: %d", ErrDraftIndex, index)
	}
	entry := s.current.Entries[index]
	if !entry.Active {
		return fmt.Errorf("%w: %d", ErrDraftDisabled, index)
	}

	opt := &s.options[entry.Kind][entry.Option]
	if entry.Upgrade {
		var next string
		var ok bool
		if entry.Kind == inventory.Weapon {
			next, ok = s.equipper.LevelUpWeapon(entry.Slot)
		} else {
			next, ok = s.equipper.LevelUpPassiveItem(entry.Slot)
		}
		if !ok {
			return fmt.Errorf("%w: upgrade %s", ErrDraftApply, opt.CurrentID)
		}
		opt.CurrentID = next
	} else {
		var ok bool
		if entry.Kind == inventory.Weapon {
			ok = s.equipper.SpawnWeapon(opt.BaseID)
		} else {
			ok = s.equipper.SpawnPassiveItem(opt.BaseID)
		}
		if !ok {
			return fmt.Errorf("%w: add %s", ErrDraftApply, opt.BaseID)
		}
		opt.CurrentID = opt.BaseID
	}

	s.log.Debug().Str("item", opt.CurrentID).Bool("upgrade", entry.Upgrade).Msg("draft entry selected")
	s.close()
	return nil
}

func (s *DraftSystem) close() {
	s.current = nil
	s.eventDispatcher.Dispatch(event.Event{Type: event.DraftClosed})
	if s.pending > 0 {
		s.pending--
		s.Open()
	}
}
