package planner

import "github.com/beka-birhanu/vacuum-planner/world"

// DepthFirst explores the most recently generated state first. Successors
// are pushed in reverse so the first one Expand emits is the first popped.
// The returned plan is whichever one the search reaches first, not
// necessarily the shortest.
func DepthFirst(grid *world.Grid, start State) Result {
	frontier := stack{{state: start}}
	visited := visitedSet{}
	result := Result{NodesGenerated: 1}

	for len(frontier) > 0 {
		current := frontier.pop()
		if visited.has(current.state) {
			continue
		}

		result.NodesExpanded++
		visited.add(current.state)

		if current.state.Goal() {
			return solved(result, current.path)
		}

		successors := Expand(current.state, grid)
		result.NodesGenerated += len(successors)

		for i := len(successors) - 1; i >= 0; i-- {
			next := successors[i]
			if visited.has(next.State) {
				continue
			}
			frontier.push(node{state: next.State, path: extend(current.path, next.Action)})
		}
	}

	return result
}
