// Package hardening invokes the external checksec auditor over extracted
// kernel configurations and narrows its output to a curated set of
// security-hardening flags.
package hardening

// Report maps a checksec section name ("kernel", "grsecurity") to the flag
// results reported for that section.
type Report map[string]map[string]interface{}

// The allow-lists are plain static data: the curated hardening flags kept
// in filtered reports. Everything else checksec emits is discarded.
var kernelAllowList = map[string]struct{}{
	"kernel_heap_randomization":        {},
	"gcc_stack_protector":              {},
	"gcc_stack_protector_strong":       {},
	"gcc_structleak":                   {},
	"gcc_structleak_byref":             {},
	"slab_freelist_randomization":      {},
	"cpu_sw_domain":                    {},
	"virtually_mapped_stack":           {},
	"restrict_dev_mem_access":          {},
	"restrict_io_dev_mem_access":       {},
	"ro_kernel_data":                   {},
	"ro_module_data":                   {},
	"full_refcount_validation":         {},
	"hardened_usercopy":                {},
	"fortify_source":                   {},
	"restrict_dev_kmem_access":         {},
	"strict_user_copy_check":           {},
	"random_address_space_layout":      {},
	"arm_kernmem_perms":                {},
	"arm_strict_rodata":                {},
	"unmap_kernel_in_userspace":        {},
	"harden_branch_predictor":          {},
	"harden_el2_vector_mapping":        {},
	"speculative_store_bypass_disable": {},
	"emulate_privileged_access_never":  {},
	"randomize_kernel_address":         {},
	"randomize_module_region_full":     {},
}

var grsecurityAllowList = map[string]struct{}{
	"grsecurity_config":                 {},
	"config_pax_kernexec":               {},
	"config_pax_noexec":                 {},
	"config_pax_pageexec":               {},
	"config_pax_mprotect":               {},
	"config_pax_aslr":                   {},
	"config_pax_randkstack":             {},
	"config_pax_randustack":             {},
	"config_pax_randmmap":               {},
	"config_pax_memory_sanitize":        {},
	"config_pax_memory_stackleak":       {},
	"config_pax_memory_uderef":          {},
	"config_pax_refcount":               {},
	"config_pax_usercopy":               {},
	"config_grkernsec_jit_harden":       {},
	"config_bpf_jit":                    {},
	"config_grkernsec_rand_threadstack": {},
	"config_grkernsec_kmem":             {},
	"config_grkernsec_io":               {},
	"config_grkernsec_modharden":        {},
	"config_modules":                    {},
	"config_grkernsec_chroot":           {},
	"config_grkernsec_harden_ptrace":    {},
	"config_grkernsec_randnet":          {},
	"config_grkernsec_blackhole":        {},
	"config_grkernsec_brute":            {},
	"config_grkernsec_hidesym":          {},
}

// sectionAllowLists pairs each curated section with its allow-list
var sectionAllowLists = map[string]map[string]struct{}{
	"kernel":     kernelAllowList,
	"grsecurity": grsecurityAllowList,
}

// Filter rebuilds the report with only allow-listed flags in the curated
// sections; other sections are dropped entirely. Sections or keys absent
// from the input are simply absent from the output. Filter is idempotent.
func Filter(report Report) Report {
	filtered := Report{}
	for section, allowList := range sectionAllowLists {
		flags, ok := report[section]
		if !ok {
			continue
		}
		kept := map[string]interface{}{}
		for key, value := range flags {
			if _, allowed := allowList[key]; allowed {
				kept[key] = value
			}
		}
		filtered[section] = kept
	}
	return filtered
}
