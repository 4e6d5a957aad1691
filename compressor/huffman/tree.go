package huffman

import (
	"container/heap"
	"slices"
)

type huffmanTree interface {
	getFrequency() int
	getId() int
}

type huffmanLeaf struct {
	freq, id int
	symbol   rune
}

type huffmanNode struct {
	freq, id    int
	left, right huffmanTree
}

type huffmanHeap []huffmanTree

func (hub *huffmanHeap) Push(item any) {
	*hub = append(*hub, item.(huffmanTree))
}

func (hub *huffmanHeap) Pop() any {
	popped := (*hub)[len(*hub)-1]
	(*hub) = (*hub)[:len(*hub)-1]
	return popped
}

func (hub huffmanHeap) Len() int {
	return len(hub)
}

func (hub huffmanHeap) Less(i, j int) bool {
	if hub[i].getFrequency() != hub[j].getFrequency() {
		return hub[i].getFrequency() < hub[j].getFrequency()
	}
	return hub[i].getId() < hub[j].getId()
}

func (hub huffmanHeap) Swap(i, j int) {
	hub[i], hub[j] = hub[j], hub[i]
}

func (leaf huffmanLeaf) getFrequency() int {
	return leaf.freq
}

func (leaf huffmanLeaf) getId() int {
	return leaf.id
}

func (node huffmanNode) getFrequency() int {
	return node.freq
}

func (node huffmanNode) getId() int {
	return node.id
}

func countFrequencies(symbols []rune) map[rune]int {
	symbolFreq := make(map[rune]int)
	for _, symbol := range symbols {
		symbolFreq[symbol]++
	}
	return symbolFreq
}

// buildTree merges the two lowest-frequency nodes until one root remains.
// Leaves are pushed in sorted symbol order and every node carries a
// monotonically increasing id used to break frequency ties, so the tree
// shape is the same on every run.
func buildTree(symbolFreq map[rune]int) huffmanTree {
	var keys []rune
	for r := range symbolFreq {
		keys = append(keys, r)
	}
	slices.Sort(keys)
	var treehub huffmanHeap
	monoId := 0
	for _, key := range keys {
		treehub = append(treehub, huffmanLeaf{
			freq:   symbolFreq[key],
			symbol: key,
			id:     monoId,
		})
		monoId++
	}
	heap.Init(&treehub)
	for treehub.Len() > 1 {
		x := heap.Pop(&treehub).(huffmanTree)
		y := heap.Pop(&treehub).(huffmanTree)
		heap.Push(&treehub, huffmanNode{
			freq:  x.getFrequency() + y.getFrequency(),
			left:  x,
			right: y,
			id:    monoId,
		})
		monoId++
	}
	return heap.Pop(&treehub).(huffmanTree)
}

// assignCodes walks the tree depth-first, appending '0' for a left edge and
// '1' for a right edge, and records the accumulated path at each leaf. A
// single-leaf root has no path, so it gets the explicit code "0".
func assignCodes(tree huffmanTree, table CodeTable, currentPrefix []byte) {
	switch t := tree.(type) {
	case huffmanLeaf:
		if len(currentPrefix) == 0 {
			table[t.symbol] = "0"
		} else {
			table[t.symbol] = string(currentPrefix)
		}
	case huffmanNode:
		assignCodes(t.left, table, append(currentPrefix, '0'))
		assignCodes(t.right, table, append(currentPrefix, '1'))
	}
}
