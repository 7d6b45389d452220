/*
NAME
  ft8enc - encodes an FT8 standard callsign exchange into its 79-symbol
  tone sequence.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ft8enc builds a standard-exchange FT8 message from two
// callsigns and a grid square, encodes it through CRC and LDPC, and
// prints the resulting 79-symbol tone sequence.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ausocean/av/callsign"
	"github.com/ausocean/av/crc14"
	"github.com/ausocean/av/field"
	"github.com/ausocean/av/ft8proto"
	"github.com/ausocean/av/ldpc"
	"github.com/ausocean/av/message"
)

func main() {
	call1 := flag.String("call1", "", "calling station's callsign")
	call2 := flag.String("call2", "", "called station's callsign")
	grid := flag.String("grid", "", "4-character Maidenhead grid square")
	roger := flag.Bool("r", false, "set the roger/acknowledgement bit")
	flag.Parse()

	if *call1 == "" || *call2 == "" || *grid == "" {
		fmt.Fprintln(os.Stderr, "usage: ft8enc -call1 CALL -call2 CALL -grid AB12")
		os.Exit(2)
	}

	c1, ok := callsign.FromCall(*call1)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid callsign %q\n", *call1)
		os.Exit(1)
	}
	c2, ok := callsign.FromCall(*call2)
	if !ok {
		fmt.Fprintf(os.Stderr, "invalid callsign %q\n", *call2)
		os.Exit(1)
	}

	msg := message.Message{
		Kind:  message.KindStdMsg,
		Call1: c1,
		Call2: c2,
		R:     *roger,
		Grid:  field.FromGridString(*grid),
	}

	var out [64]byte
	n, ok := msg.WriteString(out[:], nil)
	if !ok {
		fmt.Fprintln(os.Stderr, "message too long to render")
		os.Exit(1)
	}
	fmt.Printf("message:  %s\n", out[:n])

	body := msg.Encode()
	sys := crc14.Add(&body)
	codeword := ldpc.Encode(&sys)

	if violated := ldpc.Check(&codeword); violated != 0 {
		fmt.Fprintf(os.Stderr, "encoder produced an invalid codeword (%d checks violated)\n", violated)
		os.Exit(1)
	}

	var plain [ft8proto.PayloadBits]bool
	for i := 0; i < ft8proto.PayloadBits; i++ {
		plain[i] = codeword.Get(i)
	}
	symbols := ft8proto.EncodeSymbols(plain)

	fmt.Print("symbols: ")
	for _, s := range symbols {
		fmt.Printf("%d", s)
	}
	fmt.Println()
}
