package diagnosis

import (
	"fmt"

	"github.com/abhisek/blockhint/internal/blocktree"
)

// conditionalNames maps conditional block types to their editor label.
var conditionalNames = map[string]string{
	blockIf:     "if do",
	blockIfElse: "if do else do",
}

// IncompleteConditional describes a conditional block without a usable
// condition.
type IncompleteConditional struct {
	Block  *blocktree.Node
	Label  string // editor label of the block, e.g. "if do"
	Reason string
}

// FindIncompleteConditional returns the first if or if/else block whose
// first value slot is not a filled condition slot.
func FindIncompleteConditional(tree *blocktree.Tree) (*IncompleteConditional, bool) {
	for _, b := range tree.FindAll(blocktree.BlockOfType(blockIf, blockIfElse)) {
		reason := missingCondition(b)
		if reason == "" {
			continue
		}
		return &IncompleteConditional{
			Block:  b,
			Label:  conditionalNames[b.Type],
			Reason: reason,
		}, true
	}
	return nil, false
}

// missingCondition returns why b has no usable condition, or "" if it does.
func missingCondition(b *blocktree.Node) string {
	slots := b.ChildrenByTag(blocktree.TagValue)
	switch {
	case len(slots) == 0:
		return "no condition slot"
	case slots[0].Name != slotCondition:
		return fmt.Sprintf("first slot is %s", slots[0].Name)
	case slots[0].SlotBlock() == nil:
		return "condition slot is empty"
	}
	return ""
}

// IncompleteBlocksDetector fires on conditionals missing their condition.
type IncompleteBlocksDetector struct{}

func (d *IncompleteBlocksDetector) Name() string            { return "incomplete-block-sequences" }
func (d *IncompleteBlocksDetector) Category() ErrorCategory { return CategoryIncompleteBlocks }

func (d *IncompleteBlocksDetector) Detect(tree *blocktree.Tree) bool {
	_, ok := FindIncompleteConditional(tree)
	return ok
}
