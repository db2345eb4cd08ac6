package main

// The contract is a library of exported entry points; the host never calls main.
func main() {}
