package main

import "opportunity-recommender/cmd"

func main() {
	cmd.Execute()
}
