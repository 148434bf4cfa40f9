// gridironctl loads season stat rows into a local history database and
// renders record boards offline, without a running service.
package main

func main() {
	Execute()
}
