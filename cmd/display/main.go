// Terminal stand-in for the cashier / kitchen / customer screens.
//
//	go run ./cmd/display -restaurant 42 -role kitchen
//	go run ./cmd/display -restaurant 42 -role cashier
//
// Cashier commands: add <name> <price> [qty] | qty <n> <quantity> | clear | quit
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kim-el/basic-pos/entity"
	"github.com/kim-el/basic-pos/ws"
)

func main() {
	url := flag.String("url", "ws://localhost:8000/ws/orders", "relay websocket URL")
	restaurant := flag.String("restaurant", "", "restaurant id")
	role := flag.String("role", "kitchen", "cashier | kitchen | customer")
	flag.Parse()

	if *restaurant == "" {
		log.Fatal("missing -restaurant")
	}

	client := ws.NewOrderClient(*url)
	defer client.Close()
	client.SetRestaurant(*restaurant)

	go func() {
		for items := range client.Updates() {
			render(*role, items)
		}
	}()

	if *role != "cashier" {
		select {} // just keep rendering
	}

	cart := ws.NewCart()
	nextID := uint(1)
	sc := bufio.NewScanner(os.Stdin)
	fmt.Println("cashier ready: add <name> <price> [qty] | qty <id> <quantity> | clear | quit")
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "add":
			if len(fields) < 3 {
				fmt.Println("usage: add <name> <price> [qty]")
				continue
			}
			price, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				fmt.Println("bad price:", fields[2])
				continue
			}
			qty := 1
			if len(fields) > 3 {
				qty, _ = strconv.Atoi(fields[3])
			}
			p := entity.Product{Name: fields[1], Price: price, IsActive: true}
			p.ID = nextID
			nextID++
			cart.Add(p, qty)
		case "qty":
			if len(fields) < 3 {
				fmt.Println("usage: qty <id> <quantity>")
				continue
			}
			id, _ := strconv.Atoi(fields[1])
			qty, _ := strconv.Atoi(fields[2])
			cart.SetQuantity(uint(id), qty)
		case "clear":
			cart.Clear()
		case "quit":
			return
		default:
			fmt.Println("unknown command:", fields[0])
			continue
		}
		client.Publish(cart.Items())
	}
}

func render(role string, items []entity.CartItem) {
	fmt.Printf("\n=== %s view: %d line(s) ===\n", role, len(items))
	var subtotal float64
	for _, it := range items {
		line := it.Product.Price * float64(it.Quantity)
		subtotal += line
		fmt.Printf("  %-24s x%-3d $%8.2f\n", it.Product.Name, it.Quantity, line)
	}
	fmt.Printf("  subtotal $%.2f  tax $%.2f  total $%.2f\n",
		subtotal, subtotal*ws.DefaultTaxRate, subtotal*(1+ws.DefaultTaxRate))
}
