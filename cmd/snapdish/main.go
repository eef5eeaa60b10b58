// Command snapdish is the terminal client: it encodes a food photo, requests
// recipes from the backend, renders them, and offers the transcript share
// actions (clipboard, WhatsApp delivery, share link).
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/pageza/snapdish/backend/internal/client"
	"github.com/pageza/snapdish/backend/internal/model"
	"github.com/pageza/snapdish/backend/internal/share"
	"github.com/pageza/snapdish/backend/internal/types"
)

func main() {
	imagePath := flag.String("image", "", "path to the food photo (required)")
	notes := flag.String("notes", "", "optional notes for the recipe generator")
	serverURL := flag.String("server", "http://localhost:8080", "SnapDish API base URL")
	flag.Parse()

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "usage: snapdish -image photo.jpg [-notes \"...\"] [-server URL]")
		os.Exit(2)
	}

	if err := run(*imagePath, *notes, *serverURL); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(imagePath, notes, serverURL string) error {
	// Local validation first: a non-image never reaches the network.
	dataURL, err := client.EncodeImage(imagePath)
	if err != nil {
		return err
	}

	api := client.NewAPIClient(serverURL)
	generate := client.NewAction[*types.GenerateResponse]()
	deliver := client.NewAction[*types.SendMessageResponse]()

	if err := generate.Begin(); err != nil {
		return err
	}
	fmt.Println("Generating recipes...")
	resp, err := api.Generate(context.Background(), dataURL, notes)
	if err != nil {
		generate.Fail(err)
		return err
	}
	generate.Succeed(resp)

	render(resp)

	result := &model.GenerationResult{Summary: resp.Summary, Recipes: resp.Recipes}
	transcript := share.Transcript(result)

	return shareLoop(api, deliver, transcript)
}

func render(resp *types.GenerateResponse) {
	fmt.Println()
	fmt.Println(resp.Summary)
	for i, recipe := range resp.Recipes {
		fmt.Printf("\nRecipe %d: %s\n", i+1, recipe.Name)
		fmt.Println(recipe.Description)
		fmt.Println("Ingredients:")
		for _, ing := range recipe.Ingredients {
			fmt.Printf("  - %s\n", ing)
		}
		fmt.Println("Steps:")
		for j, step := range recipe.Steps {
			fmt.Printf("  %d. %s\n", j+1, step)
		}
	}
	fmt.Println()
}

func shareLoop(api *client.APIClient, deliver *client.Action[*types.SendMessageResponse], transcript string) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("Share: [c]opy  [s]end <number>  [l]ink  [q]uit")
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(input) == 0 {
			continue
		}

		switch input[0] {
		case "c", "copy":
			if err := clipboard.WriteAll(transcript); err != nil {
				fmt.Println("copy failed:", err)
				continue
			}
			fmt.Println("Transcript copied to clipboard.")
		case "s", "send":
			phone := ""
			if len(input) > 1 {
				phone = input[1]
			}
			sendTranscript(api, deliver, transcript, phone)
		case "l", "link":
			fmt.Println(share.WhatsAppLink(transcript))
		case "q", "quit":
			return nil
		default:
			fmt.Println("unknown action:", input[0])
		}
	}
}

func sendTranscript(api *client.APIClient, deliver *client.Action[*types.SendMessageResponse], transcript, phone string) {
	if err := deliver.Begin(); err != nil {
		fmt.Println("send failed:", err)
		return
	}
	resp, err := api.SendMessage(context.Background(), transcript, phone)
	if err != nil {
		deliver.Fail(err)
		fmt.Println("send failed:", err)
		return
	}
	deliver.Succeed(resp)
	if resp.ID != nil {
		fmt.Printf("Message %s (id %s).\n", resp.Status, *resp.ID)
	} else {
		fmt.Printf("Message %s.\n", resp.Status)
	}
}
