package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stardodge/ecs"
)

// Selection is the entity shared between the browser and the inspector. It
// follows the entity across archetype moves.
type Selection struct {
	ref *ecs.EntityRef
}

func (s *Selection) Select(storage *ecs.Storage, id ecs.EntityId) {
	s.ref = storage.CreateEntityRef(id)
}

// Selected reports whether anything was picked, even if it has since died.
func (s *Selection) Selected() bool {
	return s.ref != nil
}

// Entity returns the current id of the selection, or 0 once it is deleted.
func (s *Selection) Entity() ecs.EntityId {
	if !s.ref.Alive() {
		return 0
	}
	return s.ref.Id
}

type EntityRow struct {
	ID          ecs.EntityId
	ArchetypeID uint32
	Components  string
}

// collectRows lists every live entity, ordered by archetype then id.
func collectRows(storage *ecs.Storage) []EntityRow {
	var rows []EntityRow
	for _, archetype := range storage.Archetypes() {
		names := make([]string, len(archetype.Types()))
		for i, t := range archetype.Types() {
			names[i] = t.String()
		}
		components := shortTypeNames(names)

		for id := range archetype.Iter() {
			rows = append(rows, EntityRow{ID: id, ArchetypeID: archetype.ID(), Components: components})
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows
}

// filterRows keeps rows whose id or component list contains filter,
// case-insensitively.
func filterRows(rows []EntityRow, filter string) []EntityRow {
	if filter == "" {
		return rows
	}
	filter = strings.ToLower(filter)

	filtered := make([]EntityRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(fmt.Sprintf("%d", row.ID), filter) ||
			strings.Contains(strings.ToLower(row.Components), filter) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// EntityBrowser is the "Entities" window. Rows are rebuilt every frame; the
// storages it is meant for hold tens of entities.
type EntityBrowser struct {
	storage   *ecs.Storage
	selection *Selection
	filter    string
	pageSize  int
	page      int
}

func NewEntityBrowser(storage *ecs.Storage, selection *Selection, pageSize int) *EntityBrowser {
	return &EntityBrowser{storage: storage, selection: selection, pageSize: max(pageSize, 1)}
}

func (eb *EntityBrowser) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 120), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Filter by id or component...", &eb.filter, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		eb.filter = ""
	}

	rows := filterRows(collectRows(eb.storage), eb.filter)
	pages := max((len(rows)+eb.pageSize-1)/eb.pageSize, 1)
	eb.page = min(eb.page, pages-1)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, -30), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Archetype")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		start := eb.page * eb.pageSize
		end := min(start+eb.pageSize, len(rows))
		for _, row := range rows[start:end] {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			selected := eb.selection.Entity() == row.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.ID), selected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selection.Select(eb.storage, row.ID)
			}
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", row.ArchetypeID))
			imgui.TableNextColumn()
			imgui.Text(row.Components)
		}
		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.page+1, pages, len(rows)))
	imgui.SameLine()
	if imgui.Button("Prev") && eb.page > 0 {
		eb.page--
	}
	imgui.SameLine()
	if imgui.Button("Next") && eb.page < pages-1 {
		eb.page++
	}

	imgui.End()
}

func (eb *EntityBrowser) Item() ImguiItem {
	return ImguiItem{Render: eb.Render}
}
