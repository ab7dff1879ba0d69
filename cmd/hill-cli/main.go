// Package main provides the hill-cli command line interface for 3x3 Hill cipher keys and messages.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli"

	hill "github.com/BackendStack21/hill3-go"
	"github.com/BackendStack21/hill3-go/core"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
	if err := newApp().Run(os.Args); err != nil {
		log.Printf("%+v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	myApp := cli.NewApp()
	myApp.Name = "hill-cli"
	myApp.Usage = "3x3 Hill cipher key generation, encryption and decryption"
	myApp.Version = VERSION + " (library " + hill.Version + ")"
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "log",
			Value: "",
			Usage: "specify a log file to output, default goes to stderr",
		},
		cli.BoolFlag{
			Name:  "verbose, V",
			Usage: "print key and timing details to the log",
		},
	}
	myApp.Before = func(c *cli.Context) error {
		if path := c.GlobalString("log"); path != "" {
			f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			if err != nil {
				return err
			}
			log.SetOutput(f)
		}
		return nil
	}
	myApp.Commands = []cli.Command{
		{
			Name:  "keygen",
			Usage: "generate a key and write it as JSON",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mode, m",
					Value: core.DefaultFiniteField.String(),
					Usage: "key mode: finite-field[:m] or unimodular-integer[:maxAbs]",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Usage: "derive the key deterministically from this seed",
				},
				cli.IntFlag{
					Name:  "attempts",
					Value: core.DefaultMaxAttempts,
					Usage: "maximum number of candidate matrices to sample",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 1,
					Usage: "number of keys to derive from --seed; more than one writes a JSON array",
				},
				cli.StringFlag{
					Name:  "output, o",
					Usage: "write to this file instead of stdout",
				},
			},
			Action: keygenAction,
		},
		{
			Name:  "encrypt",
			Usage: "encrypt a message with a key file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Usage: "key file produced by keygen",
				},
				cli.StringFlag{
					Name:  "message, M",
					Usage: "message text",
				},
				cli.StringFlag{
					Name:  "input, i",
					Usage: "read the message from this file",
				},
				cli.StringFlag{
					Name:  "output, o",
					Usage: "write to this file instead of stdout",
				},
			},
			Action: encryptAction,
		},
		{
			Name:  "decrypt",
			Usage: "decrypt a cipher file with a key file",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Usage: "key file produced by keygen",
				},
				cli.StringFlag{
					Name:  "cipher, c",
					Usage: "cipher file produced by encrypt",
				},
				cli.IntFlag{
					Name:  "length, l",
					Usage: "number of symbols to keep, overrides the length stored in the cipher file",
				},
				cli.BoolFlag{
					Name:  "keep-padding",
					Usage: "print the decrypted text including padding symbols",
				},
			},
			Action: decryptAction,
		},
		{
			Name:  "inspect",
			Usage: "print a key, its inverse and its fingerprint",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Usage: "key file produced by keygen",
				},
			},
			Action: inspectAction,
		},
	}
	return myApp
}
