package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/outfitgen/internal/domain/entities"
	"github.com/ersonp/outfitgen/internal/domain/mocks"
	"github.com/ersonp/outfitgen/internal/domain/ports"
	"github.com/ersonp/outfitgen/internal/infrastructure/xmlout"
)

func monsterScript(name, outfit string) string {
	return fmt.Sprintf("local mType = Game.createMonsterType(%q)\nmonster.outfit = {\n%s\n}\n", name, outfit)
}

func npcScript(name, outfit string) string {
	return fmt.Sprintf("local internalNpcName = %q\nnpcConfig.outfit = {\n%s\n}\n", name, outfit)
}

func newTestService(source ports.ScriptSource, sink *mocks.OutputSink, opts GenerateOptions) *GenerateService {
	return NewGenerateService(source, xmlout.NewEncoder(), sink, nil, opts)
}

func TestGenerateService_Generate_RatScenario(t *testing.T) {
	source := &mocks.ScriptSource{}
	source.AddFile("data/monster", "data/monster/rat.lua", monsterScript("Rat", "lookType = 21, lookHead = 10"))
	sink := &mocks.OutputSink{}

	result, err := newTestService(source, sink, GenerateOptions{}).
		Generate(context.Background(), entities.KindMonster, []string{"data/monster"}, "")

	require.NoError(t, err)
	assert.Equal(t, "monsters.xml", result.OutputFile)
	assert.Equal(t, 1, result.Entities)
	assert.Equal(t, 1, result.Files)
	assert.Contains(t, string(sink.Written["monsters.xml"]), `<monster name="Rat" looktype="21" lookhead="10"/>`)
}

func TestGenerateService_Generate_LaterDirectoryWins(t *testing.T) {
	source := &mocks.ScriptSource{}
	source.AddFile("a", "a/troll.lua", monsterScript("Troll", "lookType = 1, lookHead = 5"))
	source.AddFile("b", "b/troll.lua", monsterScript("Troll", "lookType = 99"))
	sink := &mocks.OutputSink{}

	result, err := newTestService(source, sink, GenerateOptions{}).
		Generate(context.Background(), entities.KindMonster, []string{"a", "b"}, "out.xml")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Entities)
	assert.Equal(t, 1, result.Replaced)
	assert.Equal(t, []string{"a", "b"}, source.DiscoverCalls)

	out := string(sink.Written["out.xml"])
	assert.Contains(t, out, `<monster name="Troll" looktype="99"/>`)
	assert.NotContains(t, out, "lookhead")
}

func TestGenerateService_Generate_LaterFileInDirectoryWins(t *testing.T) {
	source := &mocks.ScriptSource{}
	source.AddFile("a", "a/1.lua", monsterScript("Troll", "lookType = 1"))
	source.AddFile("a", "a/2.lua", monsterScript("Troll", "lookType = 2"))
	sink := &mocks.OutputSink{}

	_, err := newTestService(source, sink, GenerateOptions{Workers: 4}).
		Generate(context.Background(), entities.KindMonster, []string{"a"}, "out.xml")

	require.NoError(t, err)
	assert.Contains(t, string(sink.Written["out.xml"]), `<monster name="Troll" looktype="2"/>`)
}

func TestGenerateService_Generate_SortedOutput(t *testing.T) {
	source := &mocks.ScriptSource{}
	source.AddFile("b", "b/wolf.lua", monsterScript("Wolf", "lookType = 27"))
	source.AddFile("a", "a/bear.lua", monsterScript("Bear", "lookType = 16"))
	source.AddFile("a", "a/ant.lua", monsterScript("ant", "lookType = 3"))
	sink := &mocks.OutputSink{}

	_, err := newTestService(source, sink, GenerateOptions{}).
		Generate(context.Background(), entities.KindMonster, []string{"b", "a"}, "out.xml")
	require.NoError(t, err)

	expected := xmlout.Header + `
<monsters>
  <monster name="ant" looktype="3"/>
  <monster name="Bear" looktype="16"/>
  <monster name="Wolf" looktype="27"/>
</monsters>`
	assert.Equal(t, expected, string(sink.Written["out.xml"]))
}

func TestGenerateService_Generate_Idempotent(t *testing.T) {
	source := &mocks.ScriptSource{}
	for i := 0; i < 50; i++ {
		name := fmt.Sprintf("Creature %02d", 49-i)
		source.AddFile("d", fmt.Sprintf("d/%02d.lua", i), monsterScript(name, fmt.Sprintf("lookType = %d, lookHead = 1", i)))
	}

	var outputs []string
	for run := 0; run < 2; run++ {
		sink := &mocks.OutputSink{}
		_, err := newTestService(source, sink, GenerateOptions{Workers: 3}).
			Generate(context.Background(), entities.KindMonster, []string{"d"}, "out.xml")
		require.NoError(t, err)
		outputs = append(outputs, string(sink.Written["out.xml"]))
	}

	assert.Equal(t, outputs[0], outputs[1])
}

func TestGenerateService_Generate_Npcs(t *testing.T) {
	source := &mocks.ScriptSource{}
	source.AddFile("npc", "npc/chest.lua", npcScript("Chest", "lookType = 5, lookTypeEx = 1740"))
	sink := &mocks.OutputSink{}

	result, err := newTestService(source, sink, GenerateOptions{}).
		Generate(context.Background(), entities.KindNpc, []string{"npc"}, "")

	require.NoError(t, err)
	assert.Equal(t, "npcs.xml", result.OutputFile)
	assert.Contains(t, string(sink.Written["npcs.xml"]), `<npc name="Chest" looktype="0" lookitem="1740"/>`)
}

func TestGenerateService_Generate_SkipsUnrecognizedFiles(t *testing.T) {
	source := &mocks.ScriptSource{}
	source.AddFile("d", "d/lib.lua", "return {}")
	source.AddFile("d", "d/rat.lua", monsterScript("Rat", "lookType = 21"))
	source.AddFile("d", "d/noout.lua", `Game.createMonsterType("Ghost")`)
	sink := &mocks.OutputSink{}

	result, err := newTestService(source, sink, GenerateOptions{}).
		Generate(context.Background(), entities.KindMonster, []string{"d"}, "out.xml")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Files)
	assert.Equal(t, 1, result.Entities)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, ExtractionSkip{Path: "d/lib.lua", Reason: SkipReasonName}, result.Skipped[0])
	assert.Equal(t, ExtractionSkip{Path: "d/noout.lua", Reason: SkipReasonOutfit}, result.Skipped[1])
}

func TestGenerateService_Generate_NoEntities(t *testing.T) {
	source := &mocks.ScriptSource{}
	source.AddDir("empty")
	source.AddFile("other", "other/lib.lua", "return {}")
	sink := &mocks.OutputSink{}

	_, err := newTestService(source, sink, GenerateOptions{}).
		Generate(context.Background(), entities.KindMonster, []string{"empty", "other"}, "out.xml")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoEntities))
	assert.Contains(t, err.Error(), "no monsters found")
	assert.Zero(t, sink.WriteCallCount, "no output file when nothing was extracted")
}

func TestGenerateService_Generate_DiscoveryError(t *testing.T) {
	source := &mocks.ScriptSource{}
	source.AddFile("a", "a/rat.lua", monsterScript("Rat", "lookType = 21"))
	sink := &mocks.OutputSink{}

	_, err := newTestService(source, sink, GenerateOptions{}).
		Generate(context.Background(), entities.KindMonster, []string{"a", "missing"}, "out.xml")

	require.Error(t, err)
	var de *DiscoveryError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "missing", de.Root)
	assert.Zero(t, sink.WriteCallCount)
}

func TestGenerateService_Generate_ReadErrorIsFatal(t *testing.T) {
	source := &mocks.ScriptSource{ReadErr: map[string]error{"a/bad.lua": errors.New("permission denied")}}
	source.AddFile("a", "a/rat.lua", monsterScript("Rat", "lookType = 21"))
	source.AddFile("a", "a/bad.lua", "")
	sink := &mocks.OutputSink{}

	_, err := newTestService(source, sink, GenerateOptions{}).
		Generate(context.Background(), entities.KindMonster, []string{"a"}, "out.xml")

	require.Error(t, err)
	var re *ReadError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "a/bad.lua", re.Path)
	assert.Zero(t, sink.WriteCallCount)
}

func TestGenerateService_Generate_SkipUnreadable(t *testing.T) {
	source := &mocks.ScriptSource{ReadErr: map[string]error{"a/bad.lua": errors.New("permission denied")}}
	source.AddFile("a", "a/rat.lua", monsterScript("Rat", "lookType = 21"))
	source.AddFile("a", "a/bad.lua", "")
	sink := &mocks.OutputSink{}

	result, err := newTestService(source, sink, GenerateOptions{SkipUnreadable: true}).
		Generate(context.Background(), entities.KindMonster, []string{"a"}, "out.xml")

	require.NoError(t, err)
	assert.Equal(t, []string{"a/bad.lua"}, result.Unreadable)
	assert.Equal(t, 1, result.Entities)
}

func TestGenerateService_Generate_WriteError(t *testing.T) {
	source := &mocks.ScriptSource{}
	source.AddFile("a", "a/rat.lua", monsterScript("Rat", "lookType = 21"))
	sink := &mocks.OutputSink{Err: errors.New("disk full")}

	_, err := newTestService(source, sink, GenerateOptions{}).
		Generate(context.Background(), entities.KindMonster, []string{"a"}, "out.xml")

	require.Error(t, err)
	var we *WriteError
	require.ErrorAs(t, err, &we)
	assert.Equal(t, "out.xml", we.Path)
}

func TestGenerateService_Generate_DropsUnserializableRecords(t *testing.T) {
	source := &mocks.ScriptSource{}
	source.AddFile("a", "a/bad.lua", monsterScript("Bad", "look type = 1"))
	source.AddFile("a", "a/rat.lua", monsterScript("Rat", "lookType = 21"))
	sink := &mocks.OutputSink{}

	result, err := newTestService(source, sink, GenerateOptions{}).
		Generate(context.Background(), entities.KindMonster, []string{"a"}, "out.xml")

	require.NoError(t, err)
	assert.Equal(t, 1, result.Entities)
	require.Len(t, result.Dropped, 1)
	assert.Equal(t, "Bad", result.Dropped[0].Name)
	assert.NotContains(t, string(sink.Written["out.xml"]), `name="Bad"`)
}

func TestGenerateService_Generate_UnsupportedKind(t *testing.T) {
	_, err := newTestService(&mocks.ScriptSource{}, &mocks.OutputSink{}, GenerateOptions{}).
		Generate(context.Background(), entities.Kind("item"), []string{"a"}, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported kind")
}

func TestGenerateService_Generate_Cancelled(t *testing.T) {
	source := &mocks.ScriptSource{}
	source.AddFile("a", "a/rat.lua", monsterScript("Rat", "lookType = 21"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(source, &mocks.OutputSink{}, GenerateOptions{}).
		Generate(ctx, entities.KindMonster, []string{"a"}, "out.xml")
	require.ErrorIs(t, err, context.Canceled)
}
