package main

func main() {
	loadConfigDefaults()
	execute()
}
