package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pancasting/internal/entities/character"
	"github.com/KirkDiggler/pancasting/internal/errors"
	"github.com/KirkDiggler/pancasting/internal/kvstore"
	kvstoremock "github.com/KirkDiggler/pancasting/internal/kvstore/mock"
	"github.com/KirkDiggler/pancasting/internal/pkg/clock"
	"github.com/KirkDiggler/pancasting/internal/pkg/idgen"
	"github.com/KirkDiggler/pancasting/internal/store"
	"github.com/KirkDiggler/pancasting/internal/testutils"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	kv    kvstore.Store
	clock *clock.Manual
	store *store.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.kv = kvstore.NewMemory()
	s.clock = clock.NewManual(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	s.store = s.newStore(s.kv)
}

func (s *StoreTestSuite) newStore(kv kvstore.Store) *store.Store {
	st, err := store.New(&store.Config{
		KV:          kv,
		IDGenerator: idgen.NewSequential("char"),
		Clock:       s.clock,
	})
	s.Require().NoError(err)
	return st
}

func (s *StoreTestSuite) TestNewRequiresDependencies() {
	_, err := store.New(&store.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "KV")

	_, err = store.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestCreateNewCharacterDefaults() {
	c := s.store.CreateNewCharacter("Aria")

	s.Assert().Equal("Aria", c.Name)
	s.Assert().Equal("char_1", c.ID)
	s.Assert().Empty(c.Race.Name)
	s.Assert().Empty(c.YouthEvents)
	s.Assert().NotNil(c.YouthEvents)
	s.Assert().NotNil(c.Gifts)
	s.Assert().Equal(map[string]int{
		"cuMod": 0, "solMod": 0, "tiMod": 0, "biMod": 0, "legitMod": 0,
	}, c.ActiveModifiers)
	s.Assert().True(s.store.HasUnsavedChanges())
	s.Assert().Same(c, s.store.Current())
}

func (s *StoreTestSuite) TestMutationsWithoutCharacterAreNoOps() {
	s.store.UpdateRace(character.Race{Name: "Elf"})
	s.store.AddSkill(character.Skill{Name: "Riding", Rank: 1})
	s.store.AddModifier("cuMod", 2)
	s.Require().NoError(s.store.AddEvent(character.Event{Category: character.EventCategoryYouth}))
	s.Require().NoError(s.store.UpdateCharacter(character.Character{Name: "Ghost"}))

	s.Assert().Nil(s.store.Current())
	s.Assert().False(s.store.HasUnsavedChanges())
	s.Assert().Nil(s.store.ActiveModifiers())
	s.Assert().Equal(0, s.store.CalculateTotalModifier(""))

	_, ok := s.store.CloneCharacter()
	s.Assert().False(ok)
	s.Assert().Equal("", s.store.ExportCharacter())
}

func (s *StoreTestSuite) TestCopyOnWrite() {
	before := s.store.CreateNewCharacter("Aria")
	s.clock.Advance(time.Minute)

	s.store.UpdateRace(character.Race{Name: "Human"})

	after := s.store.Current()
	s.Assert().NotSame(before, after)
	s.Assert().Empty(before.Race.Name)
	s.Assert().Equal("Human", after.Race.Name)
	s.Assert().Equal(before.LastModified+int64(time.Minute/time.Millisecond), after.LastModified)
}

func (s *StoreTestSuite) TestUpdateCharacterMergesAndKeepsID() {
	s.store.CreateNewCharacter("Aria")
	s.store.SetAlignment("Neutral Good")

	err := s.store.UpdateCharacter(character.Character{
		ID:      "hijack",
		Age:     27,
		Culture: character.Culture{Name: "Civilized", CuMod: 4},
	})
	s.Require().NoError(err)

	c := s.store.Current()
	s.Assert().Equal("char_1", c.ID)
	s.Assert().Equal("Aria", c.Name)
	s.Assert().Equal(27, c.Age)
	s.Assert().Equal("Neutral Good", c.Alignment)
	s.Assert().Equal(4, c.ActiveModifiers[character.ModifierCulture])
}

func (s *StoreTestSuite) TestModifierPropagation() {
	s.store.CreateNewCharacter("Aria")

	s.Run("culture", func() {
		s.store.UpdateCulture(character.Culture{Name: "Nomad", CuMod: 2})
		s.Assert().Equal(2, s.store.Current().ActiveModifiers["cuMod"])
	})

	s.Run("social status", func() {
		s.store.UpdateSocialStatus(character.SocialStatus{Name: "Noble", SolMod: 5, TiMod: 3})
		mods := s.store.ActiveModifiers()
		s.Assert().Equal(5, mods["solMod"])
		s.Assert().Equal(3, mods["tiMod"])
	})

	s.Run("birth", func() {
		s.store.UpdateBirthCircumstances(character.BirthCircumstances{Legitimate: false, BiMod: -1, LegitMod: 2})
		mods := s.store.ActiveModifiers()
		s.Assert().Equal(-1, mods["biMod"])
		s.Assert().Equal(2, mods["legitMod"])
	})

	s.Assert().Equal(11, s.store.CalculateTotalModifier(""))
}

func (s *StoreTestSuite) TestModifierOperations() {
	s.store.CreateNewCharacter("Aria")

	s.store.AddModifier("cuMod", 2)
	s.store.AddModifier("cuMod", 3)
	s.store.UpdateModifier("luck", 7)
	s.Assert().Equal(5, s.store.CalculateTotalModifier("cuMod"))
	s.Assert().Equal(12, s.store.CalculateTotalModifier(""))

	mods := s.store.ActiveModifiers()
	mods["cuMod"] = 100
	s.Assert().Equal(5, s.store.CalculateTotalModifier("cuMod"), "returned map is a copy")

	s.store.RemoveModifier("cuMod")
	s.store.RemoveModifier("luck")
	mods = s.store.ActiveModifiers()
	s.Assert().Contains(mods, "cuMod")
	s.Assert().Equal(0, mods["cuMod"])
	s.Assert().NotContains(mods, "luck")
}

func (s *StoreTestSuite) TestAddSkillKeepsHighestRank() {
	testCases := []struct {
		name  string
		ranks []int
	}{
		{"rising", []int{2, 4}},
		{"falling", []int{4, 2}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.store.CreateNewCharacter("Aria")
			for _, r := range tc.ranks {
				s.store.AddSkill(character.Skill{Name: "Swordsmanship", Rank: r})
			}

			skills := s.store.Current().Skills
			s.Require().Len(skills, 1)
			s.Assert().Equal(4, skills[0].Rank)
		})
	}
}

func (s *StoreTestSuite) TestSkillUpdateAndRemove() {
	s.store.CreateNewCharacter("Aria")
	s.store.AddSkill(character.Skill{Name: "Tracking", Rank: 1})

	s.Require().NoError(s.store.UpdateSkill("Tracking", character.Skill{Name: "Renamed", Rank: 3, Source: "Hunter"}))
	skill := s.store.Current().Skills[0]
	s.Assert().Equal("Tracking", skill.Name)
	s.Assert().Equal(3, skill.Rank)
	s.Assert().Equal("Hunter", skill.Source)

	s.store.RemoveSkill("Tracking")
	s.Assert().Equal(0, s.store.TotalSkills())
}

func (s *StoreTestSuite) TestEventsRouteByCategory() {
	s.store.CreateNewCharacter("Aria")

	s.Require().NoError(s.store.AddEvent(character.Event{Category: character.EventCategoryYouth, Result: "Orphaned"}))
	s.Require().NoError(s.store.AddEvent(character.Event{Category: character.EventCategoryAdulthood, Result: "Knighted"}))

	err := s.store.AddEvent(character.Event{Category: "old age", Result: "Retired"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	c := s.store.Current()
	s.Require().Len(c.YouthEvents, 1)
	s.Require().Len(c.AdulthoodEvents, 1)
	s.Assert().Empty(c.MiscellaneousEvents)
	s.Assert().NotEmpty(c.YouthEvents[0].ID)
	s.Assert().Equal(s.clock.Now().UnixMilli(), c.YouthEvents[0].Timestamp)
	s.Assert().Equal(2, s.store.TotalEvents())

	youthID := c.YouthEvents[0].ID
	s.Require().NoError(s.store.UpdateEvent(character.EventCategoryYouth, youthID, character.Event{
		Category:    character.EventCategoryAdulthood,
		Description: "Raised by wolves",
	}))
	updated := s.store.Current().YouthEvents[0]
	s.Assert().Equal(character.EventCategoryYouth, updated.Category)
	s.Assert().Equal("Orphaned", updated.Result)
	s.Assert().Equal("Raised by wolves", updated.Description)

	s.store.RemoveEvent(character.EventCategoryAdulthood, youthID)
	s.Assert().Equal(2, s.store.TotalEvents(), "removal is scoped to the category")

	s.store.RemoveEvent(character.EventCategoryYouth, youthID)
	s.Assert().Equal(1, s.store.TotalEvents())
}

func (s *StoreTestSuite) TestIDCollections() {
	s.store.CreateNewCharacter("Aria")

	s.store.AddOccupation(character.Occupation{Name: "Soldier", Type: "military"})
	s.store.AddOccupation(character.Occupation{ID: "occ-2", Name: "Guard", Type: "military"})
	s.Require().NoError(s.store.UpdateOccupation("occ-2", character.Occupation{ID: "other", Years: 3}))

	c := s.store.Current()
	s.Require().Len(c.Occupations, 2)
	s.Assert().Equal("occ-2", c.Occupations[1].ID)
	s.Assert().Equal(3, c.Occupations[1].Years)
	s.Assert().Equal("Guard", c.Occupations[1].Name)

	s.store.RemoveOccupation("occ-2")
	s.Assert().Equal(1, s.store.TotalOccupations())

	s.store.AddCompanion(character.NPC{Name: "Bram"})
	s.store.AddRival(character.NPC{ID: "rival-1", Name: "Cass"})
	s.Require().NoError(s.store.UpdateRival("rival-1", character.NPC{Attitude: "hostile"}))
	s.store.AddSpecialItem(character.SpecialItem{ID: "item-1", Name: "Ring"})
	s.store.RemoveSpecialItem("missing")

	c = s.store.Current()
	s.Assert().Len(c.Companions, 1)
	s.Assert().Equal("hostile", c.Rivals[0].Attitude)
	s.Assert().Len(c.SpecialItems, 1)
}

func (s *StoreTestSuite) TestUnmatchedChangesLeaveStateAlone() {
	s.store.CreateNewCharacter("Aria")
	s.store.AddOccupation(character.Occupation{ID: "occ-1", Name: "Soldier"})
	s.store.AddHobby(character.Hobby{Name: "Fishing"})
	s.store.MarkSaved()
	before := s.store.Current()
	s.clock.Advance(time.Minute)

	s.Require().NoError(s.store.UpdateOccupation("nope", character.Occupation{Years: 3}))
	s.Require().NoError(s.store.UpdateSkill("Juggling", character.Skill{Rank: 2}))
	s.Require().NoError(s.store.UpdateHobby(4, character.Hobby{Interest: "mild"}))
	s.Require().NoError(s.store.UpdateEvent(character.EventCategoryYouth, "nope", character.Event{Result: "x"}))
	s.store.RemoveOccupation("nope")
	s.store.RemoveHobby(7)
	s.store.RemovePersonalityTrait(character.TraitNeutral, 0)
	s.store.RemovePersonalityTrait("unknown", 0)
	s.store.UpdateGenerationStepNotes("nope", "notes")

	s.Assert().Same(before, s.store.Current())
	s.Assert().False(s.store.HasUnsavedChanges())

	s.Require().NoError(s.store.UpdateOccupation("occ-1", character.Occupation{Years: 3}))
	s.Assert().NotSame(before, s.store.Current())
	s.Assert().True(s.store.HasUnsavedChanges())
	s.Assert().Greater(s.store.Current().LastModified, before.LastModified)
}

func (s *StoreTestSuite) TestIndexCollections() {
	s.store.CreateNewCharacter("Aria")

	s.store.AddHobby(character.Hobby{Name: "Fishing"})
	s.store.AddHobby(character.Hobby{Name: "Dice"})
	s.Require().NoError(s.store.UpdateHobby(1, character.Hobby{Interest: "obsessive"}))
	s.store.RemoveHobby(0)
	s.store.RemoveHobby(5)

	s.store.AddGift(character.Gift{Name: "Locket"})
	s.store.AddLegacy(character.Legacy{Name: "Old debt"})
	s.store.RemoveGift(0)

	c := s.store.Current()
	s.Require().Len(c.Hobbies, 1)
	s.Assert().Equal("Dice", c.Hobbies[0].Name)
	s.Assert().Equal("obsessive", c.Hobbies[0].Interest)
	s.Assert().Empty(c.Gifts)
	s.Assert().Len(c.Legacies, 1)
}

func (s *StoreTestSuite) TestPersonality() {
	s.store.CreateNewCharacter("Aria")

	s.store.AddPersonalityTrait(character.TraitLightside, character.Trait{Name: "Honest"})
	s.store.AddPersonalityTrait(character.TraitDarkside, character.Trait{Name: "Greedy"})
	s.store.AddPersonalityTrait("unknown", character.Trait{Name: "Ignored"})
	s.store.AddValue(character.Value{Name: "Family"})
	s.store.RemovePersonalityTrait(character.TraitDarkside, 0)

	c := s.store.Current()
	s.Assert().Len(c.PersonalityTraits.Lightside, 1)
	s.Assert().Empty(c.PersonalityTraits.Darkside)
	s.Assert().Len(c.AllTraits(), 1)
	s.Assert().Len(c.Values, 1)

	s.store.UpdatePersonality(character.PersonalityTraits{Neutral: []character.Trait{{Name: "Curious"}}})
	c = s.store.Current()
	s.Assert().Empty(c.PersonalityTraits.Lightside)
	s.Assert().NotNil(c.PersonalityTraits.Lightside)
	s.Assert().Len(c.PersonalityTraits.Neutral, 1)
}

func (s *StoreTestSuite) TestGenerationLog() {
	s.store.CreateNewCharacter("Aria")

	s.store.AddGenerationStep(character.GenerationStep{TableID: "101", SelectedEntry: character.Entry{Result: "Human"}})
	s.store.AddGenerationStep(character.GenerationStep{TableID: "102", ManualSelection: true})

	log := s.store.Current().GenerationHistory
	s.Require().Len(log, 2)
	s.Assert().Equal(1, log[0].StepNumber)
	s.Assert().Equal(2, log[1].StepNumber)
	s.Assert().Nil(log[1].RollResult)

	s.store.UpdateGenerationStepNotes(log[0].ID, "rolled twice")
	s.Assert().Equal("rolled twice", s.store.Current().GenerationHistory[0].Notes)
	s.Assert().Empty(log[0].Notes, "earlier references are unchanged")
}

func (s *StoreTestSuite) TestValidateCharacter() {
	s.Run("no character", func() {
		s.store.ResetCharacter()
		result := s.store.ValidateCharacter()
		s.Assert().False(result.IsValid)
		s.Assert().Equal([]string{"No character loaded"}, result.Errors)
	})

	s.Run("missing name", func() {
		s.store.CreateNewCharacter("")
		result := s.store.ValidateCharacter()
		s.Assert().False(result.IsValid)
		s.Assert().Len(result.Errors, 1)
	})

	s.Run("unusual age is a warning", func() {
		s.store.CreateNewCharacter("Aria")
		s.Require().NoError(s.store.UpdateCharacter(character.Character{Age: 250}))
		result := s.store.ValidateCharacter()
		s.Assert().True(result.IsValid)
		s.Assert().Len(result.Warnings, 1)
	})
}

func (s *StoreTestSuite) TestSummary() {
	s.Assert().Equal("No character loaded", s.store.Summary())

	s.store.CreateNewCharacter("Aria")
	s.store.UpdateRace(character.Race{Name: "Elf"})
	s.store.AddSkill(character.Skill{Name: "Archery", Rank: 2})

	summary := s.store.Summary()
	s.Assert().Contains(summary, "Aria")
	s.Assert().Contains(summary, "Elf")
	s.Assert().Contains(summary, "1 skills")
}

func (s *StoreTestSuite) TestExportImportRoundTrip() {
	s.store.CreateNewCharacter("Aria")
	s.store.UpdateRace(character.Race{Name: "Dwarf", Traits: []string{"Stonecunning"}})
	s.store.AddSkill(character.Skill{Name: "Mining", Rank: 3})
	s.Require().NoError(s.store.AddEvent(character.Event{Category: character.EventCategoryMiscellaneous, Result: "Found a map"}))
	s.store.UpdateModifier("luck", 1)
	s.store.UpdateFamily(character.Family{Head: "Mother", Members: []string{}, Siblings: []character.Sibling{}})
	s.Require().NoError(s.store.AddEvent(character.Event{
		Category: character.EventCategoryYouth,
		Result:   "Quiet childhood",
		Effects:  []string{},
	}))
	s.store.AddSpecialItem(character.SpecialItem{Name: "Plain ring", Powers: []string{}})
	s.store.AddGenerationStep(character.GenerationStep{
		TableID:          "101",
		ModifiersApplied: []string{},
		SelectedEntry:    character.Entry{Result: "Dwarf", Effects: []string{}},
	})
	original := s.store.Current()
	s.Require().NotNil(original.YouthEvents[0].Effects)

	data := s.store.ExportCharacter()
	s.Require().NotEmpty(data)

	other := s.newStore(kvstore.NewMemory())
	s.Require().True(other.ImportCharacter(data))
	s.Assert().Equal(original, other.Current())
	s.Assert().True(other.HasUnsavedChanges())
}

func (s *StoreTestSuite) TestImportFailureKeepsState() {
	original := s.store.CreateNewCharacter("Aria")

	s.Assert().False(s.store.ImportCharacter("{not json"))
	s.Assert().NotEmpty(s.store.ErrorMessage())
	s.Assert().True(errors.IsDataLoss(s.store.Err()))
	s.Assert().Same(original, s.store.Current())

	s.Require().True(s.store.ImportCharacter(`{"id":"char-7","name":"Bram"}`))
	s.Assert().NoError(s.store.Err())
}

func (s *StoreTestSuite) TestCloneCharacter() {
	original := s.store.CreateNewCharacter("Aria")

	clone, ok := s.store.CloneCharacter()
	s.Require().True(ok)
	s.Assert().NotEqual(original.ID, clone.ID)
	s.Assert().Equal(original.Name, clone.Name)
	s.Assert().Same(original, s.store.Current())
}

func (s *StoreTestSuite) TestRestoreCharacter() {
	c := s.store.CreateNewCharacter("Aria")
	s.store.MarkSaved()
	s.store.SetError("boom")

	s.store.UpdateRace(character.Race{Name: "Elf"})
	s.store.RestoreCharacter(c)

	s.Assert().Empty(s.store.Current().Race.Name)
	s.Assert().NotSame(c, s.store.Current())
	s.Assert().True(s.store.HasUnsavedChanges())
	s.Assert().Equal("boom", s.store.ErrorMessage())

	s.store.RestoreCharacter(nil)
	s.Assert().NotNil(s.store.Current())
}

func (s *StoreTestSuite) TestSaveAndLoad() {
	c := s.store.CreateNewCharacter("Aria")
	s.store.UpdateRace(character.Race{Name: "Halfling"})

	s.Require().True(s.store.SaveCharacter(s.ctx))
	s.Assert().False(s.store.HasUnsavedChanges())
	s.Assert().False(s.store.IsLoading())

	other := s.newStore(s.kv)
	s.Require().True(other.LoadCharacterByID(s.ctx, c.ID))
	s.Assert().Equal("Halfling", other.Current().Race.Name)
	s.Assert().False(other.HasUnsavedChanges())

	s.Run("missing key", func() {
		s.Assert().False(other.LoadCharacterByID(s.ctx, "nobody"))
		s.Assert().Empty(other.ErrorMessage())
		s.Assert().Equal(c.ID, other.Current().ID)
	})

	s.Run("malformed value", func() {
		s.Require().NoError(s.kv.Set(s.ctx, "broken", "{{{"))
		s.Assert().False(other.LoadCharacterByID(s.ctx, "broken"))
		s.Assert().Contains(other.ErrorMessage(), "Failed to load character")
	})

	s.Run("delete", func() {
		s.Assert().True(other.DeleteCharacter(s.ctx, c.ID))
		s.Assert().Nil(other.Current())
		s.Assert().False(other.LoadCharacterByID(s.ctx, c.ID))
	})
}

func (s *StoreTestSuite) TestSaveAndLoadWithRedis() {
	kv, mr := testutils.CreateTestRedisStore(s.T())
	st := s.newStore(kv)

	st.LoadCharacter(testutils.CreateMilitaryCharacter())
	s.Require().True(st.SaveCharacter(s.ctx))
	s.Assert().True(mr.Exists(kvstore.CharacterKey(testutils.TestCharacterID)))

	other := s.newStore(kv)
	s.Require().True(other.LoadCharacterByID(s.ctx, testutils.TestCharacterID))
	s.Assert().Equal(testutils.TestCharacterName, other.Current().Name)
	s.Assert().Len(other.Current().Occupations, 3)
	s.Assert().Equal(4, other.Current().ActiveModifiers[character.ModifierCulture])
}

func (s *StoreTestSuite) TestSaveWithoutCharacter() {
	s.Assert().False(s.store.SaveCharacter(s.ctx))
	s.Assert().Equal("No character to save", s.store.ErrorMessage())
}

func (s *StoreTestSuite) TestStorageFailuresAreRecorded() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	mockKV := kvstoremock.NewMockStore(ctrl)
	st := s.newStore(mockKV)
	st.CreateNewCharacter("Aria")

	mockKV.EXPECT().
		Set(s.ctx, "char_1", gomock.Any()).
		Return(errors.Unavailablef("redis down"))
	s.Assert().False(st.SaveCharacter(s.ctx))
	s.Assert().Equal("Failed to save character: redis down", st.ErrorMessage())
	s.Assert().True(errors.IsUnavailable(st.Err()))
	s.Assert().Equal(st.ErrorMessage(), errors.GetMessage(st.Err()))
	s.Assert().True(st.HasUnsavedChanges())

	mockKV.EXPECT().
		Get(s.ctx, "char_9").
		Return("", errors.Internal("disk error"))
	s.Assert().False(st.LoadCharacterByID(s.ctx, "char_9"))
	s.Assert().Equal("Failed to load character: disk error", st.ErrorMessage())
	s.Assert().True(errors.IsInternal(st.Err()))
	s.Assert().Equal("char_1", st.Current().ID)

	mockKV.EXPECT().
		Delete(s.ctx, "char_1").
		Return(errors.Internal("disk error"))
	s.Assert().False(st.DeleteCharacter(s.ctx, "char_1"))
	s.Assert().NotNil(st.Current())
}

func (s *StoreTestSuite) TestErrorFlags() {
	s.Assert().NoError(s.store.Err())
	s.Assert().False(s.store.SaveCharacter(s.ctx))
	s.Assert().True(errors.IsFailedPrecondition(s.store.Err()))

	s.store.SetError("boom")
	s.Assert().Equal("boom", s.store.ErrorMessage())
	s.Assert().True(errors.IsInternal(s.store.Err()))
	s.store.ClearError()
	s.Assert().Empty(s.store.ErrorMessage())
	s.Assert().NoError(s.store.Err())

	s.store.SetLoading(true)
	s.Assert().True(s.store.IsLoading())

	s.store.MarkUnsaved()
	s.Assert().True(s.store.HasUnsavedChanges())
	s.store.MarkSaved()
	s.Assert().False(s.store.HasUnsavedChanges())

	s.store.SetError("stale")
	s.store.LoadCharacter(character.New("x", "Loaded", 0))
	s.Assert().Empty(s.store.ErrorMessage())
}
