package planner

import "github.com/beka-birhanu/vacuum-planner/world"

// actionCost is the price of every action, Vacuum included.
const actionCost = 1

// UniformCost always expands the cheapest frontier entry, so with unit costs
// the first clean state it pops is reached by a shortest plan. Entries of
// equal cost come out in insertion order.
func UniformCost(grid *world.Grid, start State) Result {
	frontier := &priorityFrontier{}
	frontier.push(node{state: start})
	visited := visitedSet{}
	result := Result{NodesGenerated: 1}

	for frontier.len() > 0 {
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

		for _, next := range successors {
			if visited.has(next.State) {
				continue
			}
			frontier.push(node{
				state: next.State,
				path:  extend(current.path, next.Action),
				cost:  current.cost + actionCost,
			})
		}
	}

	return result
}
