package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zarchlab/s390x/cpu"
	"github.com/zarchlab/s390x/encoder"
)

// demoProgram exercises every addressing form and fixup path the encoder
// supports: register moves, short and long displacements, storage-storage
// moves, vector loads and relative branches with TLS markers.
func demoProgram() []*encoder.Instruction {
	return []*encoder.Instruction{
		encoder.Inst(cpu.OPSTMG, encoder.Reg(cpu.R6), encoder.Reg(cpu.R15), encoder.Reg(cpu.R15), encoder.Imm(48)),
		encoder.Inst(cpu.OPLARL, encoder.Reg(cpu.R2), encoder.Sym(encoder.Symbol("buffer"))),
		encoder.Inst(cpu.OPLG, encoder.Reg(cpu.R3), encoder.Reg(cpu.R2), encoder.Imm(0x12345), encoder.Reg(cpu.R0)),
		encoder.Inst(cpu.OPLR, encoder.Reg(cpu.R4), encoder.Reg(cpu.R3)),
		encoder.Inst(cpu.OPMVC, encoder.Reg(cpu.R15), encoder.Imm(160), encoder.Imm(16), encoder.Reg(cpu.R2), encoder.Imm(0)),
		encoder.Inst(cpu.OPVL, encoder.Reg(cpu.V17), encoder.Reg(cpu.R2), encoder.Imm(0), encoder.Reg(cpu.R0)),
		encoder.Inst(cpu.OPBRASL, encoder.Reg(cpu.R14),
			encoder.Sym(encoder.Symbol("__tls_get_offset")),
			encoder.Sym(encoder.Symbol("counter"))),
		encoder.Inst(cpu.OPBRC, encoder.Imm(15), encoder.Sym(encoder.Symbol("loop"))),
	}
}

func run(cmd *cobra.Command, args []string) error {
	showFixups, _ := cmd.Flags().GetBool("fixups")

	enc := encoder.New()
	offset := 0
	for _, inst := range demoProgram() {
		out, err := enc.Encode(inst)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", inst.Op, err)
		}

		fmt.Printf("%04x:  %-18s %s\n", offset, fmt.Sprintf("% x", out.Bytes), inst.Op)
		if showFixups {
			for _, f := range out.Fixups {
				fmt.Printf("       fixup %s (at %04x)\n", f, offset+f.Offset)
			}
		}
		offset += len(out.Bytes)
	}
	return nil
}

func main() {
	root := &cobra.Command{
		Use:   "zemit",
		Short: "Encode a demo instruction sequence and print its machine code",
		RunE:  run,
	}
	root.Flags().Bool("fixups", false, "list relocation fixups alongside the code")

	if err := root.Execute(); err != nil {
		slog.Error("zemit failed", "err", err)
		os.Exit(1)
	}
}
