// internal/harness/demo.go
package harness

import (
	"fmt"
	"io"
	"strings"
)

// NOTE: the demo material lets a single completion be tried without fetching
// any articles. Experiments use the dataset instead.

// DemoHistory are prior documents supplied as history in a demo completion.
var DemoHistory = []string{
	`Artificial Intelligence has revolutionized healthcare diagnostics through advanced medical imaging analysis.
Deep learning algorithms have demonstrated remarkable accuracy in detecting various conditions, from cancer to
cardiovascular diseases. These AI systems can analyze X-rays, MRIs, and CT scans with precision that sometimes
exceeds human capabilities. For example, in mammography screening, AI-assisted systems have shown a significant
reduction in false positives while maintaining high sensitivity in detecting early-stage breast cancer.`,

	`The integration of AI in electronic health records (EHR) has transformed patient care management.
Machine learning algorithms can now predict patient risks, recommend personalized treatment plans, and
identify potential drug interactions. These systems analyze vast amounts of patient data, including medical
history, genetic information, and lifestyle factors, to provide comprehensive health insights. Healthcare
providers can use these AI-driven insights to make more informed decisions and improve patient outcomes.`,

	`AI-powered robotic surgery represents another breakthrough in medical technology. These systems combine
computer vision, machine learning, and precision robotics to assist surgeons in performing complex procedures.
The AI components can analyze real-time surgical data, provide guidance for optimal instrument placement, and
even predict potential complications during surgery. This has led to increased precision, reduced recovery
times, and improved surgical outcomes across various specialties.`,
}

// DemoBefore is the text before the cursor in a demo completion.
const DemoBefore = `The impact of these advancements has been profound, leading to new applications
in various industries. One of the most notable `

// DemoAfter is the text after the cursor in a demo completion.
const DemoAfter = `This has resulted in increased efficiency and productivity, as well as the
creation of new job opportunities in the tech sector.`

// PrintDemo writes the demo inputs around the generated text.
func PrintDemo(w io.Writer, history []string, before, after, generated string) {
	rule := strings.Repeat("=", 80)

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("HISTORICAL DOCUMENTS:"))
	fmt.Fprintln(w, rule)
	for i, doc := range history {
		fmt.Fprintf(w, "\nDocument %d:\n", i+1)
		fmt.Fprintln(w, clipHead(doc, displayChars))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("BEFORE CURSOR:"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, before)

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("GENERATED TEXT:"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, genStyle.Render("<<"+generated+">>"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, labelStyle.Render("AFTER CURSOR:"))
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, after)
}
