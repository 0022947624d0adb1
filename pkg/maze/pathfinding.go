// pkg/maze/pathfinding.go
package maze

import (
	"container/heap"

	"go-maze-defense/pkg/utils"
)

// AStar находит кратчайший путь от start до goal по клеткам PATH
func AStar(start, goal Cell, g *Grid) []Cell {
	if !g.IsPath(start) || !g.IsPath(goal) {
		return nil
	}
	pq := &PriorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &Node{Cell: start, Cost: 0, Parent: nil})
	costSoFar := make(map[Cell]int)
	costSoFar[start] = 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Cell == goal {
			return reconstructPath(current)
		}
		for _, neighbor := range g.Neighbors(current.Cell) {
			newCost := costSoFar[current.Cell] + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				priority := newCost + manhattan(neighbor, goal)
				heap.Push(pq, &Node{Cell: neighbor, Cost: priority, Parent: current})
			}
		}
	}
	return nil // Нет пути
}

// PriorityQueue для A*
type PriorityQueue []*Node

type Node struct {
	Cell   Cell
	Cost   int
	Parent *Node
}

func (pq PriorityQueue) Len() int           { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool { return pq[i].Cost < pq[j].Cost }
func (pq PriorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(node *Node) []Cell {
	path := []Cell{}
	for node != nil {
		path = append([]Cell{node.Cell}, path...)
		node = node.Parent
	}
	return path
}

func manhattan(a, b Cell) int {
	return utils.Abs(a.Col-b.Col) + utils.Abs(a.Row-b.Row)
}
