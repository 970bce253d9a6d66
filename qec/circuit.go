package qec

import (
	"fmt"
	"strings"
)

// QASMBuilder accumulates an OpenQASM 2.0 circuit description that an
// embedding UI can render. The builder only covers the handful of gates
// the teaching circuits need.
type QASMBuilder struct {
	registers    []string
	gates        []string
	measurements []string
}

// NewQASMBuilder starts a circuit with the given quantum and classical
// register sizes. A classical size of 0 omits the classical register.
func NewQASMBuilder(qubits, classical int) *QASMBuilder {
	b := &QASMBuilder{}
	b.registers = append(b.registers, fmt.Sprintf("qreg q[%d];", qubits))
	if classical > 0 {
		b.registers = append(b.registers, fmt.Sprintf("creg c[%d];", classical))
	}
	return b
}

// CX appends a controlled-X gate.
func (b *QASMBuilder) CX(control, target int) *QASMBuilder {
	b.gates = append(b.gates, fmt.Sprintf("cx q[%d],q[%d];", control, target))
	return b
}

// H appends a Hadamard gate.
func (b *QASMBuilder) H(q int) *QASMBuilder {
	b.gates = append(b.gates, fmt.Sprintf("h q[%d];", q))
	return b
}

// Barrier appends a full-width barrier.
func (b *QASMBuilder) Barrier() *QASMBuilder {
	b.gates = append(b.gates, "barrier q;")
	return b
}

// Measure appends a measurement of qubit q into classical bit c.
func (b *QASMBuilder) Measure(q, c int) *QASMBuilder {
	b.measurements = append(b.measurements, fmt.Sprintf("measure q[%d] -> c[%d];", q, c))
	return b
}

// Build renders the accumulated circuit as OpenQASM 2.0 text.
func (b *QASMBuilder) Build() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	for _, r := range b.registers {
		sb.WriteString(r + "\n")
	}
	sb.WriteString("\n")
	for _, g := range b.gates {
		sb.WriteString(g + "\n")
	}
	if len(b.measurements) > 0 {
		sb.WriteString("\n")
		for _, m := range b.measurements {
			sb.WriteString(m + "\n")
		}
	}
	return sb.String()
}

// BitFlipEncodeCircuit fans the state on q0 out to q1 and q2 with CNOTs,
// encoding one logical qubit into the 3-qubit repetition code.
func BitFlipEncodeCircuit() string {
	return NewQASMBuilder(3, 0).CX(0, 1).CX(0, 2).Build()
}

// BitFlipSyndromeCircuit is the encode step followed by two-ancilla parity
// extraction: ancilla q3 captures the (q0,q1) parity, q4 the (q1,q2)
// parity, both measured into classical bits.
func BitFlipSyndromeCircuit() string {
	b := NewQASMBuilder(5, 2)
	b.CX(0, 1).CX(0, 2).Barrier()
	b.CX(0, 3).CX(1, 3)
	b.CX(1, 4).CX(2, 4).Barrier()
	b.Measure(3, 0)
	b.Measure(4, 1)
	return b.Build()
}

// PhaseFlipEncodeCircuit is the bit-flip encoder followed by Hadamards on
// all three qubits: inside the H-sandwich a Z error acts like an X error,
// so the bit-flip machinery corrects phase flips unchanged.
func PhaseFlipEncodeCircuit() string {
	return NewQASMBuilder(3, 0).CX(0, 1).CX(0, 2).H(0).H(1).H(2).Build()
}
