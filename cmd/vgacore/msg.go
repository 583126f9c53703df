package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/playbymail/vgacore/game/msg"
	"github.com/playbymail/vgacore/gameconfig"
)

type msgCommand struct {
	File    string `short:"f" long:"file" description:"v3 or v3.5 outbox file to decode" required:"true"`
	V35     bool   `long:"v35" description:"File is in v3.5 format rather than v3"`
	Turn    int    `short:"t" long:"turn" description:"Turn number to tag decoded messages with" default:"1"`
	Filter  bool   `long:"filter" description:"Apply the module's default message filters"`
	Search  string `long:"search" description:"Print only the first message whose body contains this substring"`
}

func addMsgCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("msg",
		"Decode and browse a v3/v3.5 message file",
		"Decodes an outbox-format message file into an inbox and prints each\n"+
			"message's heading, optionally filtering routine headings or\n"+
			"searching for a substring via the browser's search mode.",
		&msgCommand{})
	if err != nil {
		panic(err)
	}
}

func (c *msgCommand) Execute(args []string) error {
	configureLogging()

	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading message file: %w", err)
	}

	var decoded []msg.Decoded
	if c.V35 {
		decoded, err = msg.DecodeV35(data)
	} else {
		decoded, err = msg.DecodeV3(data)
	}
	if err != nil {
		return fmt.Errorf("decoding message file: %w", err)
	}

	inbox := msg.NewInbox()
	for _, d := range decoded {
		inbox.Add(c.Turn, d.Body)
	}

	config := msg.NewConfiguration()
	if c.Filter {
		config = gameconfig.DefaultMessageFilterConfiguration().Apply()
	}
	browser := msg.NewBrowser(inbox, config)

	if c.Search != "" {
		i := browser.Search(msg.SearchForward, 1, false, c.Search)
		if i < 0 {
			fmt.Println("no match")
			return nil
		}
		fmt.Println(inbox.DisplayText(i))
		return nil
	}

	for i := 0; i < inbox.NumMessages(); i++ {
		meta := inbox.Metadata(i)
		if config.IsFiltered(meta.Heading) {
			continue
		}
		fmt.Printf("[%2d] %s\n", i, meta.Heading)
	}
	fmt.Printf("%d message(s) decoded\n", inbox.NumMessages())
	return nil
}
